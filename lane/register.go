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

// This file provides the pure-Go scalar register implementation. It is the
// fallback used whenever shims_avx2.go / shims_avx512.go don't apply to the
// current (T, dispatch level) pair, and it is also the implementation used
// for every type on architectures with no archsimd shim. Because Number is
// a plain union of native Go numeric types (no Float16/BFloat16 wrapper
// types in the mix), arithmetic operators apply directly; there is no need
// for any()-based type switches to route around a half-width wrapper type.

// Load creates a register by reading up to MaxLanes[T]() elements from src.
func Load[T Number](src []T) Register[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Register[T]{data: data}
}

// Load4 loads 4 consecutive registers from src, for 8-wide dense-lane
// unrolling one Load4 pair at a time.
func Load4[T Number](src []T) (Register[T], Register[T], Register[T], Register[T]) {
	lanes := MaxLanes[T]()
	return Load(src), Load(src[lanes:]), Load(src[lanes*2:]), Load(src[lanes*3:])
}

// Set creates a register with every lane set to value.
func Set[T Number](value T) Register[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Register[T]{data: data}
}

// Zero creates a register with every lane set to the zero value of T.
func Zero[T Number]() Register[T] {
	return Register[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs element-wise addition.
func Add[T Number](a, b Register[T]) Register[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Register[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Number](a, b Register[T]) Register[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Register[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Number](a, b Register[T]) Register[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Register[T]{data: result}
}

// Div performs element-wise division. For integer types this is Go integer
// division (truncating toward zero), and an integer lane divided by zero
// panics with Go's runtime divide-by-zero error, not a ShapeError.
func Div[T Number](a, b Register[T]) Register[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Register[T]{data: result}
}

// Min returns the element-wise minimum.
func Min[T Number](a, b Register[T]) Register[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Register[T]{data: result}
}

// Max returns the element-wise maximum.
func Max[T Number](a, b Register[T]) Register[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Register[T]{data: result}
}

// FMA performs a multiply-add: a*b + c. The portable loop rounds floats once
// (math.FMA); the archsimd shims compute a separate multiply and add.
func FMA[T Number](a, b, c Register[T]) Register[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	if n == MaxLanes[T]() && HasSIMD() {
		if r, ok := simdFMA(a.data[:n], b.data[:n], c.data[:n]); ok {
			return Register[T]{data: r}
		}
	}
	result := make([]T, n)
	for i := range n {
		result[i] = fma(a.data[i], b.data[i], c.data[i])
	}
	return Register[T]{data: result}
}

// ReduceSum horizontally sums every lane. For a full-width register of a
// shimmed type, this dispatches to hardware via simdReduceSum.
func ReduceSum[T Number](v Register[T]) T {
	if len(v.data) == MaxLanes[T]() && HasSIMD() {
		if sum, ok := simdReduceSum(v.data); ok {
			return sum
		}
	}
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes of v.
func ReduceMin[T Number](v Register[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes of v.
func ReduceMax[T Number](v Register[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
