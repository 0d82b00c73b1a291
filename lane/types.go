// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lane provides the portable SIMD register capability that every
// numeric kernel in this module is written against exactly once.
//
// It follows the Highway C++ design philosophy this package was adapted
// from: write one generic body per operation, then let runtime CPU dispatch
// pick the fastest backend (AVX-512, AVX-2, NEON, or a scalar fallback) the
// host actually supports. There is no virtual dispatch anywhere in this
// package: Register[T] is a concrete generic type whose lane width is a
// function of the process-wide CurrentWidth(), set once by CPU probing in
// an init() function, so every arithmetic primitive here is monomorphized
// by the Go compiler per element type.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vecalgebra/lane"
//
//	a := lane.Load(data1)
//	b := lane.Load(data2)
//	sum := lane.Add(a, b)
//	sum.Store(output)
package lane

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Floats is a constraint for the native Go floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Number is the constraint for every element type this module supports:
// the ten scalar primitives f32, f64, u8, u16, u32, u64, i8, i16, i32, i64.
type Number interface {
	Floats | Integers
}

// Register is an opaque lane-group of Number values — the ABI-level SIMD
// register abstraction. Its width (the number of lanes it holds) is
// MaxLanes[T](), computed from the process's detected CurrentWidth(); it
// never changes once the process starts.
//
// Register instances should not be constructed directly; use Load, Set,
// or Zero.
type Register[T Number] struct {
	data []T
}

// NumLanes returns the number of lanes held by this register.
func (r Register[T]) NumLanes() int {
	return len(r.data)
}

// Data exposes the backing slice. Intended for tests and the kernel layer
// immediately above this package, not for general use.
func (r Register[T]) Data() []T {
	return r.data
}

// Store writes the register's lanes into dst, truncating to the shorter of
// the two lengths.
func (r Register[T]) Store(dst []T) {
	n := min(len(dst), len(r.data))
	copy(dst[:n], r.data[:n])
}
