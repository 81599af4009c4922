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
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// maxEstimatedCodeLength is the longest code accepted into the estimate
// cache. Longer codes are estimated but not cached.
const maxEstimatedCodeLength = 1 << 14

// EstimatorConfig contains a set of configuration options for the static
// cost estimator.
type EstimatorConfig struct {
	// CacheSize is the maximum number of cached code estimates.
	// If set to 0, a default size is used. If negative, no cache is used.
	CacheSize int
}

// Estimator computes a static lower bound on the gas consumed by a code
// blob: the sum of the fixed fees of its decoded instruction stream. The
// dynamic, operand-dependent charges of an actual execution come on top of
// this bound. Results are cached by code hash.
type Estimator struct {
	config EstimatorConfig
	cache  *lru.Cache[scarpia.Hash, scarpia.Gas]
}

// NewEstimator creates a new estimator with the provided configuration.
func NewEstimator(config EstimatorConfig) (*Estimator, error) {
	if config.CacheSize == 0 {
		config.CacheSize = 1 << 16
	}
	var cache *lru.Cache[scarpia.Hash, scarpia.Gas]
	if config.CacheSize > 0 {
		var err error
		cache, err = lru.New[scarpia.Hash, scarpia.Gas](config.CacheSize)
		if err != nil {
			return nil, err
		}
	}
	return &Estimator{
		config: config,
		cache:  cache,
	}, nil
}

// Estimate computes the static cost bound of the given code. If the provided
// code hash is not nil, it is assumed to be a valid hash of the code and is
// used to cache the result. If the hash is nil, the result is not cached.
func (e *Estimator) Estimate(code []byte, codeHash *scarpia.Hash) scarpia.Gas {
	if e.cache == nil || codeHash == nil {
		return estimate(code)
	}

	res, exists := e.cache.Get(*codeHash)
	if exists {
		return res
	}

	res = estimate(code)
	if len(code) <= maxEstimatedCodeLength {
		e.cache.Add(*codeHash, res)
	}
	return res
}

// estimate walks the instruction stream, skipping push data, and sums the
// fixed fees of all instructions encountered.
func estimate(code []byte) scarpia.Gas {
	total := scarpia.Gas(0)
	for i := 0; i < len(code); {
		op := OpCode(code[i])
		total = saturatedAdd(total, staticGasPrices.get(op))
		i += op.Width()
	}
	return total
}

// CodeHash computes the keccak256 hash of the given code, suitable as a
// cache key for Estimate.
func CodeHash(code []byte) scarpia.Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(code)
	var hash scarpia.Hash
	hasher.Sum(hash[:0])
	return hash
}
