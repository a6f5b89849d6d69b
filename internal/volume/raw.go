package volume

import (
	"errors"
	"fmt"
	"os"

	"github.com/glehmann/skeletonize/voxel"
)

// Sentinel errors for raw volume I/O.
var (
	// ErrSizeMismatch indicates a file's byte length does not equal the
	// product of the requested dimensions.
	ErrSizeMismatch = errors.New("volume: file size does not match the requested dimensions")
)

// Load reads a flat, headerless byte volume from path and wraps it as a
// voxel.DenseImage[byte] over a box of the given per-axis sizes, with axis 0
// slowest and the last axis fastest, matching voxel.DenseImage's own
// row-major layout convention (so the file's byte order can be copied
// directly into the backing array).
func Load(path string, sizes voxel.Index) (*voxel.DenseImage[byte], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("volume: reading %s: %w", path, err)
	}

	origin := make(voxel.Index, len(sizes))
	box, err := voxel.NewBox(origin, sizes)
	if err != nil {
		return nil, fmt.Errorf("volume: building domain: %w", err)
	}
	if box.Volume() != len(data) {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for dims %v", ErrSizeMismatch, len(data), box.Volume(), sizes)
	}

	img := voxel.NewDenseImage[byte](box, 0)
	forEachIndex(box, func(idx voxel.Index) {
		img.Set(idx, data[flatten(box, idx)])
	})
	return img, nil
}

// Save writes img to path as a flat, headerless byte volume, using the same
// row-major layout convention Load expects.
func Save(path string, img *voxel.DenseImage[byte]) error {
	box := img.Domain()
	data := make([]byte, box.Volume())
	forEachIndex(box, func(idx voxel.Index) {
		data[flatten(box, idx)] = img.At(idx)
	})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("volume: writing %s: %w", path, err)
	}
	return nil
}

// flatten computes a box-relative row-major offset, independent of
// DenseImage's own (unexported) stride bookkeeping.
func flatten(box voxel.Box, idx voxel.Index) int {
	off := 0
	for a := range idx {
		stride := 1
		for b := a + 1; b < len(box.Size); b++ {
			stride *= box.Size[b]
		}
		off += (idx[a] - box.Origin[a]) * stride
	}
	return off
}

// forEachIndex walks every index of box in row-major order (last axis
// fastest).
func forEachIndex(box voxel.Box, fn func(voxel.Index)) {
	n := box.Dim()
	if n == 0 {
		return
	}
	idx := box.Origin.Clone()
	for {
		fn(idx.Clone())
		a := n - 1
		for a >= 0 {
			idx[a]++
			if idx[a] < box.Origin[a]+box.Size[a] {
				break
			}
			idx[a] = box.Origin[a]
			a--
		}
		if a < 0 {
			return
		}
	}
}
