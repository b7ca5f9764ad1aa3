// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import "math/big"

var one = big.NewInt(1)

// Bitmask returns a number whose lowest k bits are all ones, that is
// 2^k - 1. Bitmask(0) is 0. Returns an *ArgumentError for negative k.
func Bitmask(k int) (*big.Int, error) {
	if k < 0 {
		return nil, newArgumentError("k", k)
	}
	mask := new(big.Int).Lsh(one, uint(k))
	return mask.Sub(mask, one), nil
}
