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

package lane

// DenseLane is an 8-register group, the unit of work for a kernel's dense
// block (Phase A). Processing 8 registers per iteration amortizes loop
// overhead and gives the scheduler enough independent accumulator chains to
// hide FMA/reduction latency, extending a four-wide load/accumulate pairing
// one step further to a full group of 8.
type DenseLane[T Number] [8]Register[T]

// LoadDense reads 8 consecutive registers' worth of data starting at src[0].
// The caller must ensure len(src) >= BlockSize[T]().
func LoadDense[T Number](src []T) DenseLane[T] {
	lanes := MaxLanes[T]()
	var d DenseLane[T]
	for i := range d {
		d[i] = Load(src[i*lanes:])
	}
	return d
}

// StoreDense writes all 8 registers of d into dst, which must be at least
// BlockSize[T]() long.
func StoreDense[T Number](d DenseLane[T], dst []T) {
	lanes := MaxLanes[T]()
	for i := range d {
		d[i].Store(dst[i*lanes:])
	}
}

// AddDense lifts Add across all 8 registers.
func AddDense[T Number](a, b DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = Add(a[i], b[i])
	}
	return r
}

// SubDense lifts Sub across all 8 registers.
func SubDense[T Number](a, b DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = Sub(a[i], b[i])
	}
	return r
}

// MulDense lifts Mul across all 8 registers.
func MulDense[T Number](a, b DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = Mul(a[i], b[i])
	}
	return r
}

// DivDense lifts Div across all 8 registers.
func DivDense[T Number](a, b DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = Div(a[i], b[i])
	}
	return r
}

// FMADense lifts FMA across all 8 registers.
func FMADense[T Number](a, b, c DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = FMA(a[i], b[i], c[i])
	}
	return r
}

// MinDense lifts Min across all 8 registers.
func MinDense[T Number](a, b DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = Min(a[i], b[i])
	}
	return r
}

// MaxDense lifts Max across all 8 registers.
func MaxDense[T Number](a, b DenseLane[T]) DenseLane[T] {
	var r DenseLane[T]
	for i := range r {
		r[i] = Max(a[i], b[i])
	}
	return r
}

// ReduceToRegister folds the 8 registers down to 1 via log-depth pairwise
// application of combine (8->4->2->1) and returns that single register; the
// caller reduces its lanes (e.g. with ReduceSum). Passing Add gives the
// dense-block reduction used by sum/norm/dot, Max/Min the one used by the
// horizontal max/min.
func (d DenseLane[T]) ReduceToRegister(combine func(a, b Register[T]) Register[T]) Register[T] {
	r0 := combine(d[0], d[1])
	r1 := combine(d[2], d[3])
	r2 := combine(d[4], d[5])
	r3 := combine(d[6], d[7])
	r4 := combine(r0, r1)
	r5 := combine(r2, r3)
	return combine(r4, r5)
}

// ZeroDense returns a DenseLane with every register's lanes zeroed.
func ZeroDense[T Number]() DenseLane[T] {
	var d DenseLane[T]
	for i := range d {
		d[i] = Zero[T]()
	}
	return d
}
