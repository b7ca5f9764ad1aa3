// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmask(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		k    int
		mask int64
		err  string
	}{
		{0, 0, ""},
		{1, 1, ""},
		{2, 3, ""},
		{5, 31, ""},
		{16, 65535, ""},
		{62, 1<<62 - 1, ""},
		{-1, 0, "invalid argument k: -1"},
		{-100, 0, "invalid argument k: -100"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			mask, err := Bitmask(test.k)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.mask, mask.Int64())
				}
			} else {
				a.EqualError(err, test.err)
				a.Nil(mask)
			}
		})
	}
}

func TestBitmaskWide(t *testing.T) {
	a := assert.New(t)
	mask, err := Bitmask(200)
	if !a.NoError(err) {
		return
	}
	a.Equal(200, mask.BitLen())
	want := new(big.Int).Lsh(big.NewInt(1), 200)
	want.Sub(want, big.NewInt(1))
	a.Zero(want.Cmp(mask))
}

func TestBitmaskError(t *testing.T) {
	a := assert.New(t)
	_, err := Bitmask(-5)
	var ae *ArgumentError
	if a.True(errors.As(err, &ae)) {
		a.Equal("k", ae.Arg)
		a.Equal(-5, ae.Value)
	}
}
