// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var five = big.NewInt(5)

// Float64 returns the nearest float64 to the represented value.
func (n Num) Float64() float64 {
	f := new(big.Float).SetInt(n.Signed())
	f.SetMantExp(f, n.exp)
	res, _ := f.Float64()
	return res
}

// Rat returns the represented value as an exact rational number.
func (n Num) Rat() *big.Rat {
	m := n.Signed()
	if n.exp >= 0 {
		return new(big.Rat).SetInt(m.Lsh(m, uint(n.exp)))
	}
	denom := new(big.Int).Lsh(one, uint(-n.exp))
	return new(big.Rat).SetFrac(m, denom)
}

// Decimal returns the represented value as an exact decimal number.
// Every binary fixed-point value has a finite decimal expansion,
// as 2^-k = 5^k * 10^-k, so the conversion is always lossless.
func (n Num) Decimal() decimal.Decimal {
	m := n.Signed()
	if n.exp >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(n.exp)), 0)
	}
	pow := new(big.Int).Exp(five, big.NewInt(int64(-n.exp)), nil)
	return decimal.NewFromBigInt(m.Mul(m, pow), int32(n.exp))
}
