// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import "fmt"

// ArgumentError is returned when an argument of a constructor or an
// operation is outside its declared range.
type ArgumentError struct {
	Arg   string
	Value interface{}
}

func newArgumentError(arg string, value interface{}) *ArgumentError {
	return &ArgumentError{Arg: arg, Value: value}
}

func (ae ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", ae.Arg, ae.Value)
}

// PrecisionError is returned by Normalize when the requested precision
// is smaller than the current precision of a nonzero value.
// Normalize only widens, it never narrows.
type PrecisionError struct {
	Prec   int
	Target int
}

func (pe PrecisionError) Error() string {
	return fmt.Sprintf("cannot narrow precision %d to %d", pe.Prec, pe.Target)
}
