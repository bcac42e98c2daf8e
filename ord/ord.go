// Copyright (c) 2023 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// package ord implements a total ordering on a type, the building block
// used throughout the library wherever a deterministic tie-break is required
package ord

import (
	C "github.com/hiraeth-ot/otjson/constraints"
	EQ "github.com/hiraeth-ot/otjson/eq"
)

// Ord extends [EQ.Eq] with a three-way [Compare] returning a negative number
// if the first argument is less than the second, zero if they are
// considered equal, and a positive number otherwise.
type Ord[A any] interface {
	EQ.Eq[A]
	Compare(x, y A) int
}

type ord[A any] struct {
	c func(x, y A) int
	e func(x, y A) bool
}

func (o ord[A]) Compare(x, y A) int {
	return o.c(x, y)
}

func (o ord[A]) Equals(x, y A) bool {
	return o.e(x, y)
}

// MakeOrd constructs an [Ord] from a three-way comparator and an equality predicate
func MakeOrd[A any](c func(x, y A) int, e func(x, y A) bool) Ord[A] {
	return ord[A]{c: c, e: e}
}

// FromCompare constructs an [Ord] from a three-way comparator alone; equality
// is derived from the comparator returning zero
func FromCompare[A any](c func(x, y A) int) Ord[A] {
	return MakeOrd(c, func(x, y A) bool {
		return c(x, y) == 0
	})
}

// FromStrictCompare constructs an [Ord] for any type with native < <= > >= operators
func FromStrictCompare[A C.Ordered]() Ord[A] {
	return FromCompare(func(x, y A) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
}

// ToEq projects the [EQ.Eq] part out of an [Ord]
func ToEq[A any](o Ord[A]) EQ.Eq[A] {
	return EQ.FromEquals(o.Equals)
}

// Reverse returns the dual ordering, where the roles of "less than" and "greater than" are swapped
func Reverse[A any](o Ord[A]) Ord[A] {
	return MakeOrd(func(x, y A) int {
		return o.Compare(y, x)
	}, o.Equals)
}

// Contramap projects an [Ord] on B from an [Ord] on A via an extraction function
func Contramap[A, B any](f func(b B) A) func(Ord[A]) Ord[B] {
	return func(oa Ord[A]) Ord[B] {
		return MakeOrd(func(x, y B) int {
			return oa.Compare(f(x), f(y))
		}, func(x, y B) bool {
			return oa.Equals(f(x), f(y))
		})
	}
}

// Max returns the larger of two values under the given ordering; ties favor the first argument
func Max[A any](o Ord[A]) func(x, y A) A {
	return func(x, y A) A {
		if o.Compare(x, y) >= 0 {
			return x
		}
		return y
	}
}

// Min returns the smaller of two values under the given ordering; ties favor the first argument
func Min[A any](o Ord[A]) func(x, y A) A {
	return func(x, y A) A {
		if o.Compare(x, y) <= 0 {
			return x
		}
		return y
	}
}

// Clamp restricts a value to the closed interval [lo, hi] under the given ordering
func Clamp[A any](o Ord[A]) func(lo, hi A) func(A) A {
	return func(lo, hi A) func(A) A {
		return func(x A) A {
			return Min[A](o)(hi, Max[A](o)(lo, x))
		}
	}
}

// Lt tests whether x is strictly less than y
func Lt[A any](o Ord[A]) func(x, y A) bool {
	return func(x, y A) bool {
		return o.Compare(x, y) < 0
	}
}

// Leq tests whether x is less than or equal to y
func Leq[A any](o Ord[A]) func(x, y A) bool {
	return func(x, y A) bool {
		return o.Compare(x, y) <= 0
	}
}
