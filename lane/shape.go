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

import "fmt"

// ShapeError is the contract-violation signal every kernel dispatcher
// raises when its caller breaks the shape contract: mismatched operand
// lengths, an xConst call whose declared dims disagrees with the slice it
// was actually given, or a declared dims that isn't a multiple of the
// dense block size. In lane/kernel the XConstOp wrappers check dims and
// operand lengths before calling the kernel body. The XAnyOp wrappers do not
// check operand lengths: they work over the shortest operand. The horizontal
// min/max and matrix-row kernel bodies check for an empty operand and for
// rows of unequal length themselves.
type ShapeError struct {
	Op      string
	Want    int
	Got     int
	Message string
}

func (e *ShapeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lane: %s: %s (want %d, got %d)", e.Op, e.Message, e.Want, e.Got)
	}
	return fmt.Sprintf("lane: %s: shape mismatch (want %d, got %d)", e.Op, e.Want, e.Got)
}

// RequireEqualLen panics with a ShapeError if n1 != n2.
func RequireEqualLen(op string, n1, n2 int) {
	if n1 != n2 {
		panic(&ShapeError{Op: op, Want: n1, Got: n2, Message: "operand lengths differ"})
	}
}

// RequireNonEmpty panics with a ShapeError if n == 0.
func RequireNonEmpty(op string, n int) {
	if n == 0 {
		panic(&ShapeError{Op: op, Want: 1, Got: 0, Message: "operand is empty"})
	}
}

// RequireConstDims panics with a ShapeError unless dims equals got and is a
// multiple of block — the xconst entry-point precondition.
func RequireConstDims(op string, dims, got, block int) {
	if dims != got {
		panic(&ShapeError{Op: op, Want: dims, Got: got, Message: "declared dims does not match slice length"})
	}
	if block > 0 && dims%block != 0 {
		panic(&ShapeError{Op: op, Want: block, Got: dims, Message: "declared dims is not a multiple of the dense block size"})
	}
}

// RequireEqualRowLen panics with a ShapeError if want != got — used by the
// matrix-wide vertical reductions to enforce that every row shares the
// first row's length.
func RequireEqualRowLen(op string, want, got int) {
	if want != got {
		panic(&ShapeError{Op: op, Want: want, Got: got, Message: "row length differs from the first row"})
	}
}
