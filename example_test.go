// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"fmt"
	"math/big"
)

func ExampleNum_Split() {
	n, err := New(false, big.NewInt(5), -2) // 0b101 * 2^-2 = 1.25
	if err != nil {
		panic(err)
	}
	hi, lo := n.Split(-1)
	fmt.Printf("%v = %v + %v\n", n.Decimal(), hi.Decimal(), lo.Decimal())
	fmt.Printf("hi = %v, lo = %v\n", hi, lo)
	// Output:
	// 1.25 = 1 + 0.25
	// hi = 0b1p0, lo = 0b1p-2
}

func ExampleNum_Normalize() {
	n, err := New(false, big.NewInt(5), -2)
	if err != nil {
		panic(err)
	}
	wide, err := n.Normalize(5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v -> %v, still %v\n", n, wide, wide.Decimal())
	fmt.Printf("equal: %v\n", n.Eq(wide))
	// Output:
	// 0b101p-2 -> 0b10100p-4, still 1.25
	// equal: true
}

func ExampleNum_Bit() {
	n := FromInt64(-6) // -0b110
	fmt.Println(n.Bit(0), n.Bit(1), n.Bit(2), n.Bit(3))
	// Output:
	// false true true false
}
