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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Fantom-foundation/Scarpia/meter"
	"github.com/Fantom-foundation/Scarpia/scarpia"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var CostCmd = cli.Command{
	Action:    doCost,
	Name:      "cost",
	Usage:     "Compute the full cost of a single instruction",
	ArgsUsage: "<instruction> [<operand> ...]",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "gas",
			Usage: "gas balance to charge against",
			Value: 1 << 40,
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: "gas model to use",
			Value: "standard",
		},
		&cli.StringFlag{
			Name:  "stored",
			Usage: "value reported for every storage slot (0x-prefixed word)",
		},
		&cli.BoolFlag{
			Name:  "accounts-exist",
			Usage: "report every account as already existing",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "print the instruction trace line",
		},
	},
}

func doCost(context *cli.Context) error {
	if context.Args().Len() < 1 {
		return fmt.Errorf("no instruction given")
	}

	op, err := parseOpCode(context.Args().Get(0))
	if err != nil {
		return err
	}

	operands := []*uint256.Int{}
	for _, arg := range context.Args().Slice()[1:] {
		operand, err := parseOperand(arg)
		if err != nil {
			return err
		}
		operands = append(operands, operand)
	}

	host := &probeHost{exists: context.Bool("accounts-exist")}
	if stored := context.String("stored"); stored != "" {
		if err := host.stored.UnmarshalText([]byte(stored)); err != nil {
			return fmt.Errorf("invalid stored value: %w", err)
		}
	}

	config := meter.Config{Model: context.String("model")}
	if context.Bool("trace") {
		config.Trace = os.Stdout
	}

	refunds := scarpia.Refunds{}
	self := scarpia.Address{}
	balance := scarpia.Gas(context.Int64("gas"))
	ctxt, err := meter.NewContext(config, meter.Parameters{
		Gas:     balance,
		Self:    self,
		Host:    host,
		Refunds: refunds,
	})
	if err != nil {
		return err
	}

	chargeErr := ctxt.ChargeInstruction(op, nil, operands)

	fmt.Printf("instruction: %v\n", op)
	fmt.Printf("cost:        %d\n", balance-ctxt.Gas())
	fmt.Printf("gas left:    %d\n", ctxt.Gas())
	if refund := refunds[self]; refund != 0 {
		fmt.Printf("refund:      %d\n", refund)
	}
	if chargeErr != nil {
		var oog *scarpia.OutOfGasError
		if errors.As(chargeErr, &oog) {
			return fmt.Errorf(
				"out of gas: %d available, %d required",
				oog.Available, oog.Required,
			)
		}
		return chargeErr
	}
	return nil
}

func parseOpCode(name string) (meter.OpCode, error) {
	for i := 0; i < 256; i++ {
		op := meter.OpCode(i)
		if op.IsValid() && strings.EqualFold(op.String(), name) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown instruction: %s", name)
}

func parseOperand(arg string) (*uint256.Int, error) {
	if strings.HasPrefix(arg, "0x") {
		return uint256.FromHex(arg)
	}
	return uint256.FromDecimal(arg)
}

// probeHost is a synthetic state oracle answering every storage query with
// one configured value and every existence query with one configured answer.
type probeHost struct {
	stored scarpia.Word
	exists bool
}

func (h *probeHost) GetStorage(scarpia.Address, scarpia.Key) scarpia.Word {
	return h.stored
}

func (h *probeHost) AccountExists(scarpia.Address) bool {
	return h.exists
}
