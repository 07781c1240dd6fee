// Copyright 2025 Provex Labs
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


package index

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// Snapshot serializes the index to a self-describing binary blob:
// dimension, vector count, then each vector in append order.
func Snapshot(ix *Index) []byte {
	size := varint.Int.Size(ix.dim) + varint.Int.Size(len(ix.vecs))
	for _, vec := range ix.vecs {
		size += vectorMUS.Size(vec)
	}

	bs := make([]byte, size)
	n := varint.Int.Marshal(ix.dim, bs)
	n += varint.Int.Marshal(len(ix.vecs), bs[n:])
	for _, vec := range ix.vecs {
		n += vectorMUS.Marshal(vec, bs[n:])
	}
	return bs
}

// Restore rebuilds an index from a Snapshot blob.
func Restore(data []byte) (*Index, error) {
	dim, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	count, n1, err := varint.Int.Unmarshal(data[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative vector count %d", ErrCorruptSnapshot, count)
	}

	ix, err := New(dim)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	ix.vecs = make([][]float32, 0, count)
	for i := 0; i < count; i++ {
		vec, n1, err := vectorMUS.Unmarshal(data[n:])
		n += n1
		if err != nil {
			return nil, fmt.Errorf("%w: vector %d: %w", ErrCorruptSnapshot, i, err)
		}
		if len(vec) != dim {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d", ErrCorruptSnapshot, i, len(vec), dim)
		}
		ix.vecs = append(ix.vecs, vec)
	}
	return ix, nil
}
