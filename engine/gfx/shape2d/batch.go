package shape2d

import (
	"errors"
	"math"

	"github.com/merrow/facet/engine/core"
)

// ErrFinished is returned by Finish on an already-finished batch.
var ErrFinished = errors.New("shape2d: batch already finished")

// Batch is an ordered, append-only collection of shapes, finished together
// into a single vertex buffer. Insertion order is the only ordering
// guarantee: no sorting, no merging, no dedup.
type Batch struct {
	shapes   []Shape
	finished bool
}

func NewBatch() *Batch { return &Batch{} }

func (b *Batch) Add(s Shape) { b.shapes = append(b.shapes, s) }

func (b *Batch) Len() int { return len(b.shapes) }

// Tessellate expands every shape in insertion order and concatenates the
// results. An error from any shape aborts the whole expansion.
func (b *Batch) Tessellate() ([]Vertex, error) {
	var verts []Vertex
	for _, s := range b.shapes {
		vs, err := s.Tessellate()
		if err != nil {
			return nil, err
		}
		verts = append(verts, vs...)
	}
	return verts, nil
}

// Finish tessellates the batch and hands the packed vertices to dev. The
// batch is consumed: Finish seals it on entry, and a second call returns
// ErrFinished even when the first one failed. An empty batch produces a
// valid zero-vertex buffer.
func (b *Batch) Finish(dev core.Device) (core.Buffer, error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true

	verts, err := b.Tessellate()
	if err != nil {
		return nil, err
	}
	b.shapes = nil
	return dev.CreateBuffer(Pack(verts), len(verts), Layout)
}

// Pack serializes vertices into Layout's byte form (little-endian float32
// positions, raw color bytes).
func Pack(verts []Vertex) []byte {
	buf := make([]byte, 0, len(verts)*vertexStride)
	for _, v := range verts {
		buf = appendFloat32(buf, v.Pos.X)
		buf = appendFloat32(buf, v.Pos.Y)
		buf = append(buf, v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	bits := math.Float32bits(f)
	return append(buf, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}
