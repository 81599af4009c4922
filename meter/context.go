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
	"io"

	"github.com/Fantom-foundation/Scarpia/scarpia"
	"github.com/holiman/uint256"
)

// Parameters summarizes the inputs required to meter one execution context.
type Parameters struct {
	// Gas is the initial balance of the context, taken from the gas limit
	// of the surrounding call frame.
	Gas scarpia.Gas

	// Self is the address of the currently executing account. Storage
	// queries and refunds are attributed to it.
	Self scarpia.Address

	// Host provides the storage and account-existence oracles.
	Host scarpia.HostContext

	// Refunds receives refund credits accrued during execution.
	Refunds scarpia.RefundLedger

	// Memory reports the current memory size of the executing contract.
	// A nil Memory is treated as an empty memory.
	Memory scarpia.MemoryInfo
}

// Config is the immutable configuration of a metering context. The gas model
// is selected once, at construction.
type Config struct {
	// Model is the name of the gas model to use; the empty string selects
	// the standard schedule. See RegisterGasModelFactory for the set of
	// available models.
	Model string

	// FlatFee is the per-instruction fee charged by the flat model. It is
	// ignored by the standard model.
	FlatFee scarpia.Gas

	// Trace, if set, receives one diagnostic line per charged instruction.
	// It is purely informational.
	Trace io.Writer
}

// Context carries the metering state of a single execution context: the
// remaining gas balance and the collaborators costs are resolved against.
// A context is not safe for concurrent use; one execution context is
// strictly sequential.
type Context struct {
	params Parameters
	model  GasModel
	trace  io.Writer
	gas    scarpia.Gas
}

// NewContext creates a metering context with the given configuration and
// parameters. The gas model named by the configuration is resolved through
// the model registry; unknown names are reported as errors.
func NewContext(config Config, params Parameters) (*Context, error) {
	name := config.Model
	if name == "" {
		name = "standard"
	}
	model, err := newGasModel(name, config)
	if err != nil {
		return nil, err
	}
	return &Context{
		params: params,
		model:  model,
		trace:  config.Trace,
		gas:    params.Gas,
	}, nil
}

// Gas returns the remaining balance of the context.
func (c *Context) Gas() scarpia.Gas {
	return c.gas
}

// ChargeInstruction computes the full cost of the given instruction under
// the configured gas model and deducts it from the remaining balance.
// The optional param carries the auxiliary value of parametrized opcodes
// (the topic count of a LOG); operands are given in the order they are
// popped from the stack. On exhaustion the balance is clamped to zero and
// an OutOfGasError is returned; this failure terminates the whole
// execution context.
func (c *Context) ChargeInstruction(op OpCode, param *byte, operands []*uint256.Int) error {
	return c.model.chargeInstruction(c, op, param, operands)
}

// UseGas reduces the balance by the given amount. It is the single choke
// point through which all cost application passes; interpreters also use it
// directly to charge call-frame gas. If the amount exceeds the balance, the
// stored balance is set to zero and an OutOfGasError carrying the previous
// balance and the requested amount is returned.
func (c *Context) UseGas(amount scarpia.Gas) error {
	newBalance := c.gas - amount
	if amount < 0 || newBalance < 0 {
		err := &scarpia.OutOfGasError{
			Available:        c.gas,
			Required:         amount,
			ResultingBalance: newBalance,
		}
		c.gas = 0
		return err
	}
	c.gas = newBalance
	return nil
}

// RefundSelfDestruct credits the fixed self-destruct refund to the executing
// account. It is invoked by the interpreter when a SELFDESTRUCT instruction
// actually executes; cost computation never triggers it.
func (c *Context) RefundSelfDestruct() {
	c.refund(SelfdestructRefundGas)
}

// refund credits the given amount to the refund ledger against the address
// of the currently executing account.
func (c *Context) refund(amount scarpia.Gas) {
	if c.params.Refunds != nil {
		c.params.Refunds.AddRefund(c.params.Self, amount)
	}
}

func (c *Context) memorySize() uint64 {
	if c.params.Memory == nil {
		return 0
	}
	return c.params.Memory.Size()
}
