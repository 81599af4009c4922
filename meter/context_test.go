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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Scarpia/scarpia"
	"github.com/holiman/uint256"
	"go.uber.org/mock/gomock"
)

func TestContext_ChargeInstructionScenarios(t *testing.T) {
	self := scarpia.Address{0x01}
	target := scarpia.Address{0x42}
	slot := scarpia.Key{31: 0x07}

	tests := map[string]struct {
		op         OpCode
		operands   []*uint256.Int
		gas        scarpia.Gas
		setup      func(host *scarpia.MockHostContext)
		wantGas    scarpia.Gas
		wantRefund scarpia.Gas
		wantErr    bool
	}{
		"add": {
			op:       ADD,
			operands: []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2)},
			gas:      10,
			wantGas:  7,
		},
		"mload_grows_empty_memory": {
			op:       MLOAD,
			operands: []*uint256.Int{uint256.NewInt(0)},
			gas:      10,
			wantGas:  10 - 3 - 3, // fixed fee plus one memory word
		},
		"sstore_creates_slot": {
			op:       SSTORE,
			operands: []*uint256.Int{uint256.NewInt(7), uint256.NewInt(5)},
			gas:      25000,
			setup: func(host *scarpia.MockHostContext) {
				host.EXPECT().GetStorage(self, slot).Return(scarpia.Word{})
			},
			wantGas: 5000,
		},
		"sstore_clears_slot": {
			op:       SSTORE,
			operands: []*uint256.Int{uint256.NewInt(7), uint256.NewInt(0)},
			gas:      10000,
			setup: func(host *scarpia.MockHostContext) {
				host.EXPECT().GetStorage(self, slot).Return(scarpia.Word{31: 7})
			},
			wantGas:    5000,
			wantRefund: 15000,
		},
		"call_to_fresh_account": {
			op: CALL,
			operands: []*uint256.Int{
				uint256.NewInt(100),  // gas
				uint256.NewInt(0x42), // target
				uint256.NewInt(1),    // value
				uint256.NewInt(0), uint256.NewInt(0),
				uint256.NewInt(0), uint256.NewInt(0),
			},
			gas: 200000,
			setup: func(host *scarpia.MockHostContext) {
				host.EXPECT().AccountExists(target).Return(false)
			},
			wantGas: 200000 - 100 - 9000 - 25000,
		},
		"running_out_of_gas_clamps_the_balance": {
			op:       ADD,
			operands: []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2)},
			gas:      2,
			wantGas:  0,
			wantErr:  true,
		},
		"refunds_survive_a_failing_deduction": {
			op:       SSTORE,
			operands: []*uint256.Int{uint256.NewInt(7), uint256.NewInt(0)},
			gas:      100,
			setup: func(host *scarpia.MockHostContext) {
				host.EXPECT().GetStorage(self, slot).Return(scarpia.Word{31: 7})
			},
			wantGas:    0,
			wantRefund: 15000,
			wantErr:    true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			host := scarpia.NewMockHostContext(ctrl)
			if test.setup != nil {
				test.setup(host)
			}

			refunds := scarpia.Refunds{}
			ctxt, err := NewContext(Config{}, Parameters{
				Gas:     test.gas,
				Self:    self,
				Host:    host,
				Refunds: refunds,
			})
			if err != nil {
				t.Fatalf("failed to create context: %v", err)
			}

			err = ctxt.ChargeInstruction(test.op, nil, test.operands)
			if test.wantErr != (err != nil) {
				t.Fatalf("unexpected error state, wanted error = %t, got %v", test.wantErr, err)
			}
			if err != nil && !errors.Is(err, scarpia.ErrOutOfGas) {
				t.Errorf("charge failure should match ErrOutOfGas, got %v", err)
			}
			if got := ctxt.Gas(); got != test.wantGas {
				t.Errorf("unexpected remaining gas, wanted %d, got %d", test.wantGas, got)
			}
			if got := refunds[self]; got != test.wantRefund {
				t.Errorf("unexpected refund, wanted %d, got %d", test.wantRefund, got)
			}
		})
	}
}

func TestContext_UseGas(t *testing.T) {
	tests := map[string]struct {
		available scarpia.Gas
		amount    scarpia.Gas
		success   bool
	}{
		"sufficient_gas":    {available: 100, amount: 10, success: true},
		"exact_amount":      {available: 100, amount: 100, success: true},
		"zero_amount":       {available: 100, amount: 0, success: true},
		"insufficient_gas":  {available: 10, amount: 100},
		"empty_balance":     {available: 0, amount: 1},
		"negative_amount":   {available: 100, amount: -10},
		"very_large_amount": {available: 100, amount: 1 << 62},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctxt := &Context{gas: test.available}
			err := ctxt.UseGas(test.amount)
			if test.success != (err == nil) {
				t.Fatalf("unexpected result, wanted success = %t, got %v", test.success, err)
			}
			want := test.available - test.amount
			if !test.success {
				want = 0
			}
			if got := ctxt.Gas(); got != want {
				t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestContext_UseGasReportsTheShortfall(t *testing.T) {
	ctxt := &Context{gas: 2}
	err := ctxt.UseGas(3)

	var oog *scarpia.OutOfGasError
	if !errors.As(err, &oog) {
		t.Fatalf("expected an OutOfGasError, got %v", err)
	}
	if oog.Available != 2 {
		t.Errorf("unexpected available gas, wanted 2, got %d", oog.Available)
	}
	if oog.Required != 3 {
		t.Errorf("unexpected required gas, wanted 3, got %d", oog.Required)
	}
	if oog.ResultingBalance != -1 {
		t.Errorf("unexpected resulting balance, wanted -1, got %d", oog.ResultingBalance)
	}
}

func TestContext_RefundSelfDestruct(t *testing.T) {
	ctrl := gomock.NewController(t)
	self := scarpia.Address{0x01}

	ledger := scarpia.NewMockRefundLedger(ctrl)
	ledger.EXPECT().AddRefund(self, SelfdestructRefundGas)

	ctxt, err := NewContext(Config{}, Parameters{
		Gas:     100,
		Self:    self,
		Refunds: ledger,
	})
	if err != nil {
		t.Fatalf("failed to create context: %v", err)
	}

	ctxt.RefundSelfDestruct()
	if got := ctxt.Gas(); got != 100 {
		t.Errorf("refunds must not touch the balance, wanted 100, got %d", got)
	}
}

func TestContext_MissingRefundLedgerIsTolerated(t *testing.T) {
	ctxt, err := NewContext(Config{}, Parameters{Gas: 100})
	if err != nil {
		t.Fatalf("failed to create context: %v", err)
	}
	ctxt.RefundSelfDestruct() // must not panic
}

func TestContext_UnknownModelIsRejected(t *testing.T) {
	_, err := NewContext(Config{Model: "does-not-exist"}, Parameters{})
	if err == nil {
		t.Errorf("expected an error for an unknown gas model")
	}
}
