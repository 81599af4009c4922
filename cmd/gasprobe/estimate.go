// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Scarpia/meter"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var EstimateCmd = cli.Command{
	Action:    doEstimate,
	Name:      "estimate",
	Usage:     "Compute the static cost bound of a code blob",
	ArgsUsage: "<hex-code>",
}

func doEstimate(context *cli.Context) error {
	if context.Args().Len() < 1 {
		return fmt.Errorf("no code given")
	}

	code, err := hex.DecodeString(strings.TrimPrefix(context.Args().Get(0), "0x"))
	if err != nil {
		return fmt.Errorf("invalid code: %w", err)
	}

	estimator, err := meter.NewEstimator(meter.EstimatorConfig{})
	if err != nil {
		return err
	}
	hash := meter.CodeHash(code)
	estimate := estimator.Estimate(code, &hash)

	fmt.Printf("code:      %d bytes\n", len(code))
	fmt.Printf("code hash: %v\n", hash)
	fmt.Printf(
		"estimate:  %d gas (~%sgas)\n",
		estimate, unitconv.FormatPrefix(float64(estimate), unitconv.SI, 1),
	)
	return nil
}
