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
	"math"

	"github.com/Fantom-foundation/Scarpia/scarpia"
	"github.com/holiman/uint256"
)

// The fee schedule of the standard gas model. The constants are deliberately
// kept at the values of the schedule this engine models; some of them differ
// from what other implementations charge for the same opcodes.
const (
	GasQuickStep   scarpia.Gas = 2  // Trivial environment and stack queries.
	GasFastestStep scarpia.Gas = 3  // Cheap ALU operations, pushes, dups, swaps.
	GasFastStep    scarpia.Gas = 5  // Multiplications, divisions.
	GasMidStep     scarpia.Gas = 8  // Modular arithmetic, JUMP.
	GasSlowStep    scarpia.Gas = 10 // JUMPI, EXP base fee.
	GasExtStep     scarpia.Gas = 20 // Operations touching external account data.

	GasStorageGet scarpia.Gas = 50 // Fixed fee of SLOAD.
	GasJumpDest   scarpia.Gas = 1  // Fixed fee of JUMPDEST.
	GasCreate     scarpia.Gas = 32000

	GasSha3Base scarpia.Gas = 30 // Fixed fee of SHA3.
	GasSha3Word scarpia.Gas = 6  // Paid per hashed 32-byte word.
	GasCopyWord scarpia.Gas = 3  // Paid per copied 32-byte word.

	GasLogBase  scarpia.Gas = 375 // Base fee of every LOG operation.
	GasLogTopic scarpia.Gas = 375 // Paid per log topic.
	GasLogByte  scarpia.Gas = 8   // Paid per byte of log data.

	GasExpBase scarpia.Gas = 10 // Base fee of EXP.
	GasExpByte scarpia.Gas = 10 // Paid per significant byte of the exponent.

	GasMemWord        scarpia.Gas = 3 // Linear coefficient of the memory fee.
	GasQuadCoeffDenom uint64      = 512

	SstoreSetGas               scarpia.Gas = 20000 // Paid when a zero slot is set to a non-zero value.
	SstoreResetGas             scarpia.Gas = 5000  // Paid for every other storage write.
	SstoreClearsScheduleRefund scarpia.Gas = 15000 // Refunded when a non-zero slot is cleared.

	CallValueTransferGas scarpia.Gas = 9000  // Paid for CALL when the value transfer is non-zero.
	CallNewAccountGas    scarpia.Gas = 25000 // Paid for CALL when the destination address didn't exist prior.

	SelfdestructRefundGas scarpia.Gas = 24000 // Refunded when a SELFDESTRUCT actually executes.
)

// Maximum memory size whose expansion cost still fits an int64.
// This magic number comes from 'core/vm/gas_table.go' 'memoryGasCost' in geth.
const maxMemoryExpansionSize = 0x1FFFFFFFE0

// deferredKind tags the variants of a deferredCalc.
type deferredKind byte

const (
	deferredNone       deferredKind = iota
	deferredMemorySize              // expand memory to a new byte size
	deferredStorageOp               // storage write, cost depends on the old value
	deferredCallCost                // memory expansion plus new-account surcharge
)

// deferredCalc describes the part of an instruction's cost that can only be
// resolved against the current memory size and the state oracles. It is
// produced by the dynamic rules and consumed by resolveDeferred.
type deferredCalc struct {
	kind deferredKind

	// size is the new memory size in bytes for deferredMemorySize, or the
	// total memory size touched by a call for deferredCallCost.
	size uint64

	// slot and value describe the pending write for deferredStorageOp.
	slot  scarpia.Key
	value scarpia.Word

	// target is the call destination for deferredCallCost; it is only
	// checked for novelty when hasTarget is set.
	target    scarpia.Address
	hasTarget bool
}

// dynamicGasCost computes the operand-dependent part of an instruction's
// cost: an immediately known fee plus an optional deferred descriptor.
// It is a pure function of the instruction and its operands; opcodes without
// a dynamic rule yield (0, none). Rules invoked with too few operands also
// degrade to (0, none) — such calls indicate an arity bug upstream, not a
// supported input.
func dynamicGasCost(op OpCode, param *byte, operands []*uint256.Int) (scarpia.Gas, deferredCalc) {
	none := deferredCalc{}
	switch op {
	case LOG0, LOG1, LOG2, LOG3, LOG4:
		if len(operands) < 2 {
			return 0, none
		}
		topics := scarpia.Gas(op - LOG0)
		if param != nil {
			topics = scarpia.Gas(*param)
		}
		size := clampedUint64(operands[1])
		cost := saturatedAdd(GasLogBase, topics*GasLogTopic)
		cost = saturatedAdd(cost, saturatedMul(GasLogByte, size))
		return cost, deferredCalc{
			kind: deferredMemorySize,
			size: saturatedSum(operands[0], operands[1]),
		}

	case EXP:
		if len(operands) < 2 {
			return 0, none
		}
		numBytes := scarpia.Gas(operands[1].ByteLen())
		return GasExpBase + numBytes*GasExpByte, none

	case SSTORE:
		if len(operands) < 2 {
			return 0, none
		}
		return 0, deferredCalc{
			kind:  deferredStorageOp,
			slot:  scarpia.Key(operands[0].Bytes32()),
			value: scarpia.Word(operands[1].Bytes32()),
		}

	case MLOAD, MSTORE:
		if len(operands) < 1 {
			return 0, none
		}
		return 0, deferredCalc{
			kind: deferredMemorySize,
			size: saturatedOffset(operands[0], 32),
		}

	case MSTORE8:
		if len(operands) < 1 {
			return 0, none
		}
		return 0, deferredCalc{
			kind: deferredMemorySize,
			size: saturatedOffset(operands[0], 1),
		}

	case RETURN:
		if len(operands) < 2 {
			return 0, none
		}
		return 0, deferredCalc{
			kind: deferredMemorySize,
			size: saturatedSum(operands[0], operands[1]),
		}

	case SHA3:
		if len(operands) < 2 {
			return 0, none
		}
		words := scarpia.SizeInWords(clampedUint64(operands[1]))
		return saturatedMul(GasSha3Word, words), deferredCalc{
			kind: deferredMemorySize,
			size: saturatedSum(operands[0], operands[1]),
		}

	case CALLDATACOPY, CODECOPY:
		if len(operands) < 3 {
			return 0, none
		}
		return copyGasCost(operands[0], operands[2])

	case EXTCODECOPY:
		// The address to copy from is the first operand; the destination
		// offset follows it.
		if len(operands) < 4 {
			return 0, none
		}
		return copyGasCost(operands[1], operands[3])

	case CREATE:
		if len(operands) < 3 {
			return 0, none
		}
		return 0, deferredCalc{
			kind: deferredMemorySize,
			size: saturatedSum(operands[1], operands[2]),
		}

	case CALL:
		return callGasCost(operands, true)

	case CALLCODE:
		return callGasCost(operands, false)
	}
	return 0, none
}

// copyGasCost prices a data-copy instruction given its destination offset and
// length operands.
func copyGasCost(destOffset, length *uint256.Int) (scarpia.Gas, deferredCalc) {
	words := scarpia.SizeInWords(clampedUint64(length))
	return saturatedMul(GasCopyWord, words), deferredCalc{
		kind: deferredMemorySize,
		size: saturatedSum(destOffset, length),
	}
}

// callGasCost prices CALL and CALLCODE. The gas limb operand is charged in
// full and subsequently forwarded to the callee by the interpreter. Only the
// value-transferring CALL variant checks the target for novelty.
func callGasCost(operands []*uint256.Int, withTarget bool) (scarpia.Gas, deferredCalc) {
	// [gas, target, value, inOffset, inLength, outOffset, outLength]
	if len(operands) != 7 {
		return 0, deferredCalc{}
	}
	cost := clampedGas(operands[0])
	if !operands[2].IsZero() {
		cost = saturatedAdd(cost, CallValueTransferGas)
	}
	deferred := deferredCalc{
		kind: deferredCallCost,
		size: saturatedSum(operands[3], operands[4], operands[5], operands[6]),
	}
	if withTarget {
		deferred.target = scarpia.Address(operands[1].Bytes20())
		deferred.hasTarget = true
	}
	return cost, deferred
}

// resolveDeferred computes the cost of a deferred descriptor against the
// current memory size and the state oracles of the given context. Resolving
// a storage clear records its refund as a side effect; this happens before
// the subsequent deduction, which may still fail.
func resolveDeferred(c *Context, deferred deferredCalc) scarpia.Gas {
	switch deferred.kind {
	case deferredMemorySize:
		return memoryExpansionCost(c.memorySize(), deferred.size)
	case deferredStorageOp:
		return storageOpCost(c, deferred.slot, deferred.value)
	case deferredCallCost:
		cost := memoryExpansionCost(c.memorySize(), deferred.size)
		if deferred.hasTarget && !c.params.Host.AccountExists(deferred.target) {
			cost = saturatedAdd(cost, CallNewAccountGas)
		}
		return cost
	}
	return 0
}

// memoryExpansionCost computes the fee for growing the memory from its
// current byte size to the given new byte size. Sizes are rounded up to
// whole 32-byte words; shrinking or staying within the current word count
// is free.
func memoryExpansionCost(currentSize, newSize uint64) scarpia.Gas {
	newWords := scarpia.SizeInWords(newSize)
	currentWords := scarpia.SizeInWords(currentSize)
	if newWords <= currentWords {
		return 0
	}
	if newSize > maxMemoryExpansionSize {
		return scarpia.Gas(math.MaxInt64)
	}
	return quadraticMemoryCost(newWords) - quadraticMemoryCost(currentWords)
}

func quadraticMemoryCost(words uint64) scarpia.Gas {
	return scarpia.Gas(words*words/GasQuadCoeffDenom) + scarpia.Gas(words)*GasMemWord
}

// storageOpCost prices a pending storage write based on the currently stored
// value of the slot. Clearing a non-zero slot credits the clearing refund to
// the executing account.
func storageOpCost(c *Context, slot scarpia.Key, value scarpia.Word) scarpia.Gas {
	zero := scarpia.Word{}
	current := c.params.Host.GetStorage(c.params.Self, slot)
	if current == zero && value != zero {
		return SstoreSetGas
	}
	if current != zero && value == zero {
		c.refund(SstoreClearsScheduleRefund)
	}
	return SstoreResetGas
}

// clampedUint64 converts an operand to uint64, saturating at the maximum.
func clampedUint64(value *uint256.Int) uint64 {
	if !value.IsUint64() {
		return math.MaxUint64
	}
	return value.Uint64()
}

// clampedGas converts an operand to a gas amount, saturating at the maximum
// representable value. A saturated cost makes the subsequent deduction fail,
// which is the correct outcome for operands of this magnitude.
func clampedGas(value *uint256.Int) scarpia.Gas {
	if !value.IsUint64() || value.Uint64() > math.MaxInt64 {
		return scarpia.Gas(math.MaxInt64)
	}
	return scarpia.Gas(value.Uint64())
}

// saturatedOffset computes offset+width in bytes, saturating on overflow.
func saturatedOffset(offset *uint256.Int, width uint64) uint64 {
	base := clampedUint64(offset)
	if base > math.MaxUint64-width {
		return math.MaxUint64
	}
	return base + width
}

// saturatedSum adds operand values into a byte size, saturating on overflow.
func saturatedSum(operands ...*uint256.Int) uint64 {
	sum := uint64(0)
	for _, operand := range operands {
		value := clampedUint64(operand)
		if sum > math.MaxUint64-value {
			return math.MaxUint64
		}
		sum += value
	}
	return sum
}

// saturatedAdd adds two non-negative gas amounts, saturating at MaxInt64.
func saturatedAdd(a, b scarpia.Gas) scarpia.Gas {
	if a > math.MaxInt64-b {
		return scarpia.Gas(math.MaxInt64)
	}
	return a + b
}

// saturatedMul multiplies a fee by a count, saturating at MaxInt64.
func saturatedMul(fee scarpia.Gas, count uint64) scarpia.Gas {
	if fee == 0 || count == 0 {
		return 0
	}
	if count > uint64(math.MaxInt64)/uint64(fee) {
		return scarpia.Gas(math.MaxInt64)
	}
	return fee * scarpia.Gas(count)
}
