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

import "testing"

func TestRequireEqualLenOK(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("RequireEqualLen panicked unexpectedly: %v", r)
		}
	}()
	RequireEqualLen("test_op", 4, 4)
}

func TestRequireEqualLenMismatch(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RequireEqualLen: expected panic on mismatched lengths")
		}
		if _, ok := r.(*ShapeError); !ok {
			t.Errorf("RequireEqualLen: panicked with %T, want *ShapeError", r)
		}
	}()
	RequireEqualLen("test_op", 4, 5)
}

func TestRequireNonEmpty(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RequireNonEmpty: expected panic on empty operand")
		}
	}()
	RequireNonEmpty("test_op", 0)
}

func TestRequireConstDimsMismatchedLen(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RequireConstDims: expected panic when dims != len")
		}
	}()
	RequireConstDims("test_op", 32, 16, 8)
}

func TestRequireConstDimsNotBlockMultiple(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RequireConstDims: expected panic when dims is not a multiple of block")
		}
	}()
	RequireConstDims("test_op", 10, 10, 8)
}

func TestRequireConstDimsOK(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("RequireConstDims panicked unexpectedly: %v", r)
		}
	}()
	RequireConstDims("test_op", 16, 16, 8)
}

func TestRequireEqualRowLen(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RequireEqualRowLen: expected panic on row length mismatch")
		}
	}()
	RequireEqualRowLen("test_op", 4, 5)
}

func TestShapeErrorMessage(t *testing.T) {
	err := &ShapeError{Op: "sum", Want: 4, Got: 5, Message: "operand lengths differ"}
	if err.Error() == "" {
		t.Error("ShapeError.Error(): expected non-empty message")
	}
}
