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
	"testing"

	"github.com/Fantom-foundation/Scarpia/scarpia"
)

func TestFeeTable_ConstructionIsDeterministic(t *testing.T) {
	first := newFeeTable()
	second := newFeeTable()
	if first != second {
		t.Errorf("repeated fee table builds produced different tables")
	}
	if first != staticGasPrices {
		t.Errorf("rebuilt table differs from the table built at startup")
	}
}

func TestFeeTable_KnownFees(t *testing.T) {
	tests := map[OpCode]scarpia.Gas{
		STOP:         0,
		ADD:          3,
		MUL:          5,
		SUB:          3,
		DIV:          5,
		SIGNEXTEND:   5,
		ADDMOD:       8,
		MULMOD:       8,
		EXP:          0, // dynamic-only
		LT:           3,
		NOT:          3,
		BYTE:         3,
		SHA3:         30,
		ADDRESS:      2,
		BALANCE:      20,
		CALLDATALOAD: 3,
		CALLDATACOPY: 3,
		CODECOPY:     3,
		EXTCODESIZE:  20,
		EXTCODECOPY:  20,
		BLOCKHASH:    20,
		COINBASE:     2,
		DIFFICULTY:   2,
		POP:          2,
		MLOAD:        3,
		MSTORE:       3,
		MSTORE8:      3,
		SLOAD:        50,
		SSTORE:       0, // dynamic-only
		JUMP:         8,
		JUMPI:        10,
		PC:           2,
		MSIZE:        2,
		GAS:          2,
		JUMPDEST:     1,
		PUSH1:        3,
		PUSH32:       3,
		DUP1:         3,
		DUP16:        3,
		SWAP1:        3,
		SWAP16:       3,
		LOG0:         0, // dynamic-only
		LOG4:         0, // dynamic-only
		CREATE:       32000,
		CALL:         0, // dynamic-only
		CALLCODE:     0, // dynamic-only
		RETURN:       0,
		SELFDESTRUCT: 0,
		INVALID:      0,
	}
	for op, want := range tests {
		if got := staticGasPrices.get(op); want != got {
			t.Errorf("unexpected fixed fee for %v, wanted %d, got %d", op, want, got)
		}
	}
}

func TestFeeTable_UndefinedOpCodesAreFree(t *testing.T) {
	for i := 0; i < numOpCodes; i++ {
		op := OpCode(i)
		if op.IsValid() {
			continue
		}
		if got := staticGasPrices.get(op); got != 0 {
			t.Errorf("unexpected fixed fee for undefined opcode 0x%02X, wanted 0, got %d", i, got)
		}
	}
}
