// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bfp implements a binary fixed-point number of unbounded width.
// A value consists of a sign flag, a non-negative magnitude, and the
// absolute bit position of the magnitude's least significant digit,
// representing (-1)^s * c * 2^exp.
// Values are immutable, every transform returns a new value, so they are
// safe for concurrent use without locking.
package bfp

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Num is a binary fixed-point number. The zero value of the type is the
// number zero. A zero magnitude is the unique representation of zero:
// its exponent is retained, but carries no positional meaning, and its
// sign does not affect the value.
type Num struct {
	neg bool
	c   big.Int
	exp int
}

// New returns a value for given sign, magnitude and exponent.
// The magnitude must be non-negative; it is copied, so the caller keeps
// ownership of c. No normalization is performed: leading and trailing
// zero bits of c are preserved exactly as given.
func New(neg bool, c *big.Int, exp int) (Num, error) {
	if c == nil || c.Sign() < 0 {
		return Num{}, newArgumentError("c", c)
	}
	n := Num{neg: neg, exp: exp}
	n.c.Set(c)
	return n, nil
}

// FromInt64 returns a value equal to v, with a zero exponent.
func FromInt64(v int64) Num {
	var n Num
	n.c.SetInt64(v)
	if v < 0 {
		n.neg = true
		n.c.Neg(&n.c)
	}
	return n
}

// FromBig returns a value equal to c * 2^exp.
// The sign flag is taken from the sign of c; c must not be nil.
func FromBig(c *big.Int, exp int) Num {
	n := Num{neg: c.Sign() < 0, exp: exp}
	n.c.Abs(c)
	return n
}

// Neg returns the sign flag, true for negative values.
func (n Num) Neg() bool {
	return n.neg
}

// Mag returns a copy of the magnitude.
func (n Num) Mag() *big.Int {
	return new(big.Int).Set(&n.c)
}

// Exp returns the absolute position of the magnitude's least
// significant bit.
func (n Num) Exp() int {
	return n.exp
}

// Prec returns the minimum number of binary digits required to encode
// the magnitude. It is 0 for zero.
func (n Num) Prec() int {
	return n.c.BitLen()
}

// MSB returns the absolute position of the most significant digit.
// ok is false for zero, which has no significant digits.
func (n Num) MSB() (pos int, ok bool) {
	if n.IsZero() {
		return 0, false
	}
	return n.exp + n.Prec() - 1, true
}

// NextBelow returns the highest position guaranteed not to hold a
// significant digit, which is exactly Exp()-1. Unlike MSB, it is
// defined for zero as well, and can serve as an insertion point for
// Split.
func (n Num) NextBelow() int {
	return n.exp - 1
}

// Signed returns the magnitude with the sign applied, (-1)^s * c.
func (n Num) Signed() *big.Int {
	m := n.Mag()
	if n.neg {
		m.Neg(m)
	}
	return m
}

// IsZero reports whether the value is zero.
func (n Num) IsZero() bool {
	return n.c.Sign() == 0
}

// IsInteger reports whether the represented value is a mathematical
// integer.
func (n Num) IsInteger() bool {
	if n.IsZero() { // zero is an integer
		return true
	}
	if n.exp >= 0 { // all significant digits are integer digits
		return true
	}
	if e, _ := n.MSB(); e < 0 { // all significant digits are fractional
		return false
	}
	// the digits straddle position 0, check the fractional bits
	mask, _ := Bitmask(-n.exp)
	return mask.And(mask, &n.c).Sign() == 0
}

// Bit returns the digit at absolute position pos, the coefficient of
// 2^pos in the magnitude, regardless of the sign. Positions above the
// most significant digit and below the least significant one read as
// false, as does every position of zero.
func (n Num) Bit(pos int) bool {
	if n.IsZero() || pos < n.exp {
		return false
	}
	if e, _ := n.MSB(); pos > e {
		return false
	}
	return n.c.Bit(pos-n.exp) == 1
}

// Normalize returns a value equal to n with precision extended to
// exactly prec bits: the magnitude is padded with zero bits below its
// least significant digit and the exponent is lowered accordingly, so
// the represented value does not change. Narrowing is not supported:
// if prec is smaller than the current precision of a nonzero value,
// a *PrecisionError is returned.
// Zero is returned unchanged whatever prec is, so the result's
// precision matches prec only for nonzero receivers.
func (n Num) Normalize(prec int) (Num, error) {
	if prec < 0 {
		return Num{}, newArgumentError("prec", prec)
	}
	if n.IsZero() {
		return n, nil
	}
	p := n.Prec()
	if prec < p {
		return Num{}, &PrecisionError{Prec: p, Target: prec}
	}
	shift := uint(prec - p)
	res := Num{neg: n.neg, exp: n.exp - int(shift)}
	res.c.Lsh(&n.c, shift)
	return res, nil
}

// Split partitions the digits of n at position pos: hi keeps the digits
// strictly above pos, lo keeps the digits at or below it, and both
// halves share n's sign. Shifting hi's magnitude back up by pos+1-Exp()
// bits and or-ing lo's magnitude in reconstructs the original magnitude
// exactly. A zero half carries an exponent adjacent to the split point,
// so that later composition stays aligned.
func (n Num) Split(pos int) (hi, lo Num) {
	if n.IsZero() {
		return zeroAt(n.neg, pos+1), zeroAt(n.neg, pos)
	}
	e, _ := n.MSB()
	if pos >= e { // nothing above the split point
		return zeroAt(n.neg, pos+1), n
	}
	if pos < n.exp { // nothing at or below the split point
		return n, zeroAt(n.neg, pos)
	}
	low := uint(pos + 1 - n.exp)
	mask, _ := Bitmask(int(low))
	hi = Num{neg: n.neg, exp: n.exp + int(low)}
	hi.c.Rsh(&n.c, low)
	lo = Num{neg: n.neg, exp: n.exp}
	lo.c.And(&n.c, mask)
	return hi, lo
}

func zeroAt(neg bool, exp int) Num {
	return Num{neg: neg, exp: exp}
}

// Eq returns true, if both values represent the same number.
// Values that differ only in zero-bit padding of the magnitude are
// equal, and so are all zeros, whatever their signs and exponents.
func (n Num) Eq(other Num) bool {
	if n.IsZero() || other.IsZero() {
		return n.IsZero() == other.IsZero()
	}
	if n.neg != other.neg {
		return false
	}
	a, b, ediff := &n.c, &other.c, n.exp-other.exp
	if ediff < 0 {
		a, b, ediff = b, a, -ediff
	}
	return new(big.Int).Lsh(a, uint(ediff)).Cmp(b) == 0
}

// String returns a debug representation in a binary mantissa-exponent
// form, like `-0b101p-2`.
func (n Num) String() string {
	var builder strings.Builder
	if n.neg {
		builder.WriteByte('-')
	}
	builder.WriteString("0b")
	builder.WriteString(n.c.Text(2))
	builder.WriteByte('p')
	builder.WriteString(strconv.Itoa(n.exp))
	return builder.String()
}

// GoString returns debug string representation.
func (n Num) GoString() string {
	return n.String() + fmt.Sprintf(" {%v, %v, %v}", n.neg, &n.c, n.exp)
}
