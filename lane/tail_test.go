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

// boundaryLengths mirrors the boundary sizes the operation scenarios use:
// below one register, exactly one register, a few dense blocks, and odd
// tails in between.
var boundaryLengths = []int{0, 1, 7, 8, 15, 16, 63, 64, 65, 127, 128, 1043}

func TestProcessDenseCoversEveryElement(t *testing.T) {
	block := BlockSize[float32]()
	lanes := MaxLanes[float32]()

	for _, size := range boundaryLengths {
		covered := make([]bool, size)
		ProcessDense[float32](size,
			func(offset int) {
				for i := 0; i < block; i++ {
					covered[offset+i] = true
				}
			},
			func(offset, count int) {
				for i := 0; i < count; i++ {
					covered[offset+i] = true
				}
			},
			func(offset, count int) {
				for i := 0; i < count; i++ {
					covered[offset+i] = true
				}
			},
		)
		for i, c := range covered {
			if !c {
				t.Errorf("ProcessDense size=%d (block=%d, lanes=%d): element %d not covered", size, block, lanes, i)
			}
		}
	}
}

func TestProcessDenseNoOverlap(t *testing.T) {
	for _, size := range boundaryLengths {
		visits := make([]int, size)
		ProcessDense[int64](size,
			func(offset int) {
				for i := 0; i < BlockSize[int64](); i++ {
					visits[offset+i]++
				}
			},
			func(offset, count int) {
				for i := 0; i < count; i++ {
					visits[offset+i]++
				}
			},
			func(offset, count int) {
				for i := 0; i < count; i++ {
					visits[offset+i]++
				}
			},
		)
		for i, v := range visits {
			if v != 1 {
				t.Errorf("ProcessDense size=%d: element %d visited %d times, want 1", size, i, v)
			}
		}
	}
}

func TestAlignedSizeAndIsBlockAligned(t *testing.T) {
	block := BlockSize[int32]()
	if block == 0 {
		t.Skip("zero-width dispatch not expected in tests")
	}

	aligned := AlignedSize[int32](block + 1)
	if aligned%block != 0 {
		t.Errorf("AlignedSize(%d): got %d, not a multiple of block %d", block+1, aligned, block)
	}
	if !IsBlockAligned[int32](aligned) {
		t.Errorf("IsBlockAligned(%d): want true", aligned)
	}
	if IsBlockAligned[int32](block + 1) {
		t.Errorf("IsBlockAligned(%d): want false", block+1)
	}
}
