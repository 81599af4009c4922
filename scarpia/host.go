// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package scarpia

//go:generate mockgen -source host.go -destination host_mock.go -package scarpia

// HostContext is the oracle interface through which the metering engine
// observes world state. Both queries are synchronous, side-effect-free
// reads; given identical answers, cost computation is fully deterministic.
type HostContext interface {
	// GetStorage returns the current value of the given storage slot of the
	// given account, the zero word if the slot is unset.
	GetStorage(Address, Key) Word

	// AccountExists returns true if the given account is present in the
	// world state.
	AccountExists(Address) bool
}

// MemoryInfo grants read access to the current size of the memory of the
// executing contract. The metering engine only consumes the size; the
// buffer itself is owned by the interpreter.
type MemoryInfo interface {
	// Size returns the current memory size in bytes.
	Size() uint64
}

// RefundLedger accumulates gas refund credits per account. Refunds are
// recorded by the metering engine and applied by the surrounding
// transaction layer at the end of the transaction, not by this subsystem.
type RefundLedger interface {
	AddRefund(Address, Gas)
}

// Refunds is a map-backed RefundLedger implementation suitable for a single
// execution context.
type Refunds map[Address]Gas

func (r Refunds) AddRefund(addr Address, amount Gas) {
	r[addr] += amount
}
