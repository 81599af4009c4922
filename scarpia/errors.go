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

import "fmt"

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// ErrOutOfGas is the sentinel matched by all gas-exhaustion failures.
const ErrOutOfGas = ConstError("out of gas")

// OutOfGasError is the terminal failure raised by the deduction engine when
// the cost of an operation exceeds the remaining gas balance. The stored
// balance is forced to zero before this error is issued, so callers never
// observe a negative balance. The error is not locally recoverable; it ends
// the whole execution context.
type OutOfGasError struct {
	Available        Gas // the balance before the failing deduction
	Required         Gas // the total cost that was requested
	ResultingBalance Gas // the (negative) balance the deduction would have produced
}

func (e *OutOfGasError) Error() string {
	return fmt.Sprintf("out of gas: available %d, required %d", e.Available, e.Required)
}

// Is makes gas-exhaustion failures matchable against the ErrOutOfGas
// sentinel using errors.Is.
func (e *OutOfGasError) Is(target error) bool {
	return target == ErrOutOfGas
}
