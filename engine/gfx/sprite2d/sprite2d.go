// Package sprite2d batches textured quads. Each entry maps a pixel-space
// source rectangle of one texture atlas onto a destination rectangle, with a
// per-entry tint and UV repeat factor for tiling; the batch tessellates into
// a single flat vertex buffer.
package sprite2d

import (
	"errors"
	"math"

	"github.com/merrow/facet/engine/colors"
	"github.com/merrow/facet/engine/core"
	"github.com/merrow/facet/engine/geom"
)

// Vertex: pos2 (float32) + uv2 (float32) + color4 (uint8) => 20 bytes.
const vertexStride = 20

// Layout is the wire layout of Vertex. Pipelines drawing sprite buffers must
// declare exactly this layout.
var Layout = core.VertexLayout{
	Stride: vertexStride,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},                   // pos
		{Location: 1, Size: 2, Type: core.AttribFloat32, Offset: 2 * 4},               // uv
		{Location: 2, Size: 4, Type: core.AttribUint8, Normalized: true, Offset: 4 * 4}, // color
	},
}

// Vertex is one tessellated sprite vertex.
type Vertex struct {
	Pos   geom.Vec2
	UV    geom.Vec2
	Color colors.RGBA8
}

// Repeat scales UVs per axis so the source region tiles across the
// destination quad.
type Repeat struct {
	X, Y float32
}

// RepeatDefault draws the source region exactly once.
var RepeatDefault = Repeat{X: 1, Y: 1}

// ErrFinished is returned by Finish on an already-finished batch.
var ErrFinished = errors.New("sprite2d: batch already finished")

type entry struct {
	src, dst geom.Rect
	tint     colors.Color
	rep      Repeat
}

// Batch is an ordered collection of sprite entries bound to one atlas's
// pixel dimensions. Insertion order is the only ordering guarantee.
type Batch struct {
	w, h     float32
	entries  []entry
	finished bool
}

// NewBatch creates an empty batch over an atlas of w x h pixels.
func NewBatch(w, h int) *Batch {
	return &Batch{w: float32(w), h: float32(h)}
}

// Singleton creates a batch holding exactly one entry.
func Singleton(w, h int, src, dst geom.Rect, tint colors.Color, rep Repeat) *Batch {
	b := NewBatch(w, h)
	b.Add(src, dst, tint, rep)
	return b
}

// Add appends one sprite: src in atlas pixel space, dst in target space.
func (b *Batch) Add(src, dst geom.Rect, tint colors.Color, rep Repeat) {
	b.entries = append(b.entries, entry{src: src, dst: dst, tint: tint, rep: rep})
}

func (b *Batch) Len() int { return len(b.entries) }

// Offset translates every entry's destination rect by (dx, dy) in place,
// leaving sources, tints and repeats untouched. Meant for repositioning a
// whole batch (camera scroll) without rebuilding UVs.
func (b *Batch) Offset(dx, dy float32) {
	for i := range b.entries {
		b.entries[i].dst = b.entries[i].dst.Translate(dx, dy)
	}
}

// Tessellate emits 6 vertices per entry in insertion order. Source rects are
// normalized to UV space by the atlas size and scaled by the repeat factor;
// V is flipped so the source rect's top-left lands on the quad's top-left.
func (b *Batch) Tessellate() []Vertex {
	verts := make([]Vertex, 0, len(b.entries)*6)
	for _, e := range b.entries {
		rx1 := e.src.X1 / b.w
		ry1 := e.src.Y1 / b.h
		rx2 := e.src.X2 / b.w
		ry2 := e.src.Y2 / b.h

		c := e.tint.RGBA8()
		d := e.dst

		verts = append(verts,
			Vertex{geom.V2(d.X1, d.Y1), geom.V2(rx1*e.rep.X, ry2*e.rep.Y), c},
			Vertex{geom.V2(d.X2, d.Y1), geom.V2(rx2*e.rep.X, ry2*e.rep.Y), c},
			Vertex{geom.V2(d.X2, d.Y2), geom.V2(rx2*e.rep.X, ry1*e.rep.Y), c},
			Vertex{geom.V2(d.X1, d.Y1), geom.V2(rx1*e.rep.X, ry2*e.rep.Y), c},
			Vertex{geom.V2(d.X1, d.Y2), geom.V2(rx1*e.rep.X, ry1*e.rep.Y), c},
			Vertex{geom.V2(d.X2, d.Y2), geom.V2(rx2*e.rep.X, ry1*e.rep.Y), c},
		)
	}
	return verts
}

// Finish tessellates the batch and hands the packed vertices to dev. The
// batch is consumed; a second call returns ErrFinished. An empty batch
// produces a valid zero-vertex buffer.
func (b *Batch) Finish(dev core.Device) (core.Buffer, error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true

	verts := b.Tessellate()
	b.entries = nil
	return dev.CreateBuffer(Pack(verts), len(verts), Layout)
}

// Pack serializes vertices into Layout's byte form.
func Pack(verts []Vertex) []byte {
	buf := make([]byte, 0, len(verts)*vertexStride)
	for _, v := range verts {
		buf = appendFloat32(buf, v.Pos.X)
		buf = appendFloat32(buf, v.Pos.Y)
		buf = appendFloat32(buf, v.UV.X)
		buf = appendFloat32(buf, v.UV.Y)
		buf = append(buf, v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	bits := math.Float32bits(f)
	return append(buf, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}
