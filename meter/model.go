// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package meter

import (
	"github.com/Fantom-foundation/Scarpia/scarpia"
	"github.com/holiman/uint256"
)

// GasModel determines how instructions are priced. Implementations are
// selected once per context through the model registry; the set shipped with
// this package consists of the standard schedule and a flat test model.
type GasModel interface {
	chargeInstruction(c *Context, op OpCode, param *byte, operands []*uint256.Int) error
}

func init() {
	err := RegisterGasModelFactory("standard", func(Config) (GasModel, error) {
		return standardModel{}, nil
	})
	if err != nil {
		panic(err)
	}
	err = RegisterGasModelFactory("flat", func(config Config) (GasModel, error) {
		return flatModel{fee: config.FlatFee}, nil
	})
	if err != nil {
		panic(err)
	}
}

// standardModel implements the full fee schedule: the fixed fee table, the
// dynamic rules, and the deferred resolvers.
type standardModel struct{}

func (standardModel) chargeInstruction(c *Context, op OpCode, param *byte, operands []*uint256.Int) error {
	static := staticGasPrices.get(op)
	immediate, deferred := dynamicGasCost(op, param, operands)
	resolved := scarpia.Gas(0)
	if deferred.kind != deferredNone {
		// Resolving may record a refund; this happens before the
		// deduction below, even though the deduction may still fail.
		resolved = resolveDeferred(c, deferred)
	}
	total := saturatedAdd(saturatedAdd(static, immediate), resolved)
	if err := c.UseGas(total); err != nil {
		return err
	}
	c.traceStep(op, total)
	return nil
}

// flatModel charges one configured constant per instruction, bypassing the
// schedule entirely. It exists to make gas consumption trivially predictable
// in tests.
type flatModel struct {
	fee scarpia.Gas
}

func (m flatModel) chargeInstruction(c *Context, op OpCode, _ *byte, _ []*uint256.Int) error {
	if err := c.UseGas(m.fee); err != nil {
		return err
	}
	c.traceStep(op, m.fee)
	return nil
}
