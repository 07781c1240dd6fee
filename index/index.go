package index

import (
	"fmt"
	"sort"
)

// Index is an append-only collection of fixed-dimension vectors supporting
// exhaustive k-nearest-neighbor search by squared Euclidean distance.
// It offers no in-place delete; removal is modeled by rebuilding a fresh
// Index from the surviving vectors.
//
// Index is not safe for concurrent use; callers serialize access.
type Index struct {
	dim  int
	vecs [][]float32
}

// Neighbor is one search hit: the vector's position in the index and its
// squared Euclidean distance from the query.
type Neighbor struct {
	Position int
	Distance float32
}

// New creates an empty index for vectors of the given dimension.
func New(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Index{dim: dim}, nil
}

// Dimension returns the fixed vector dimension of the index.
func (ix *Index) Dimension() int {
	return ix.dim
}

// Len returns the number of vectors currently held.
func (ix *Index) Len() int {
	return len(ix.vecs)
}

// Append adds a vector and returns its position, which equals the vector
// count before insertion. The vector is copied.
func (ix *Index) Append(vec []float32) (int, error) {
	if len(vec) != ix.dim {
		return 0, fmt.Errorf("%w: got %d, index holds %d", ErrDimensionMismatch, len(vec), ix.dim)
	}
	pos := len(ix.vecs)
	ix.vecs = append(ix.vecs, append([]float32(nil), vec...))
	return pos, nil
}

// Truncate discards vectors at positions n and beyond, restoring the
// index to an earlier append point. It exists so a caller can roll back
// an append whose surrounding operation failed; n at or beyond the
// current length is a no-op.
func (ix *Index) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(ix.vecs) {
		ix.vecs = ix.vecs[:n]
	}
}

// Search returns up to k nearest neighbors of query by squared Euclidean
// distance, closest first. Equal distances are ordered by ascending
// position so results are reproducible.
func (ix *Index) Search(query []float32, k int) ([]Neighbor, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: got %d, index holds %d", ErrDimensionMismatch, len(query), ix.dim)
	}
	if len(ix.vecs) == 0 || k <= 0 {
		return nil, nil
	}

	neighbors := make([]Neighbor, len(ix.vecs))
	for i, vec := range ix.vecs {
		neighbors[i] = Neighbor{Position: i, Distance: squaredL2(query, vec)}
	}

	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].Distance != neighbors[b].Distance {
			return neighbors[a].Distance < neighbors[b].Distance
		}
		return neighbors[a].Position < neighbors[b].Position
	})

	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k], nil
}

// squaredL2 computes the squared Euclidean distance between two vectors of
// equal length.
func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
