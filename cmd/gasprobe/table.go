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
	"fmt"

	"github.com/Fantom-foundation/Scarpia/meter"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var TableCmd = cli.Command{
	Action: doTable,
	Name:   "table",
	Usage:  "Print the fixed fee of every defined instruction",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "all",
			Usage: "include instructions with a zero fixed fee",
		},
	},
}

func doTable(context *cli.Context) error {
	includeFree := context.Bool("all")

	fmt.Printf("%-14s %10s %8s\n", "instruction", "fee", "")
	for _, op := range meter.ValidOpCodes() {
		fee := meter.FixedFee(op)
		if fee == 0 && !includeFree {
			continue
		}
		fmt.Printf(
			"%-14v %10d %8s\n",
			op, fee, unitconv.FormatPrefix(float64(fee), unitconv.SI, 1),
		)
	}
	return nil
}
