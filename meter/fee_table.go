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

import "github.com/Fantom-foundation/Scarpia/scarpia"

// feeTable maps every OpCode to its fixed base fee. Opcodes whose cost is
// entirely operand-dependent (and undefined opcodes) are listed at zero;
// their charges are produced by the dynamic rules in gas.go and are additive
// with this table.
type feeTable [numOpCodes]scarpia.Gas

func (t *feeTable) get(op OpCode) scarpia.Gas {
	return t[op]
}

// staticGasPrices is the fixed fee table of the standard schedule. It is
// built once and never mutated for the lifetime of the process.
var staticGasPrices = newFeeTable()

// FixedFee returns the fixed base fee of the given instruction under the
// standard schedule. The operand-dependent part of the cost is not included.
func FixedFee(op OpCode) scarpia.Gas {
	return staticGasPrices.get(op)
}

func newFeeTable() feeTable {
	table := feeTable{}
	for i := 0; i < numOpCodes; i++ {
		table[i] = getStaticGasPriceInternal(OpCode(i))
	}
	return table
}

func getStaticGasPriceInternal(op OpCode) scarpia.Gas {
	if PUSH1 <= op && op <= PUSH32 {
		return GasFastestStep
	}
	if DUP1 <= op && op <= DUP16 {
		return GasFastestStep
	}
	if SWAP1 <= op && op <= SWAP16 {
		return GasFastestStep
	}
	if LT <= op && op <= BYTE {
		return GasFastestStep
	}
	switch op {
	case ADD, SUB:
		return GasFastestStep
	case MUL, DIV, SDIV, MOD, SMOD, SIGNEXTEND:
		return GasFastStep
	case ADDMOD, MULMOD, JUMP:
		return GasMidStep
	case JUMPI:
		return GasSlowStep
	case ADDRESS, ORIGIN, CALLER, CALLVALUE, CALLDATASIZE, CODESIZE,
		GASPRICE, COINBASE, TIMESTAMP, NUMBER, DIFFICULTY, GASLIMIT,
		POP, PC, MSIZE, GAS:
		return GasQuickStep
	case CALLDATALOAD, CALLDATACOPY, CODECOPY, MLOAD, MSTORE, MSTORE8:
		return GasFastestStep
	case BLOCKHASH, BALANCE, EXTCODESIZE, EXTCODECOPY:
		return GasExtStep
	case SLOAD:
		return GasStorageGet
	case SHA3:
		return GasSha3Base
	case CREATE:
		return GasCreate
	case JUMPDEST:
		return GasJumpDest
	}
	// Dynamic-only opcodes (SSTORE, EXP, LOGn, CALL, CALLCODE, RETURN,
	// STOP, SELFDESTRUCT) and undefined opcodes carry no fixed fee.
	return 0
}
