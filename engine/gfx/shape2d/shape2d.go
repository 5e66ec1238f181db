// Package shape2d turns declarative line/rectangle/circle descriptors into
// flat, GPU-ready vertex data. Shapes carry a stroke (outline width + color)
// and closed shapes a fill; tessellation expands each into triangles with the
// colors baked per vertex.
package shape2d

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/merrow/facet/engine/colors"
	"github.com/merrow/facet/engine/core"
	"github.com/merrow/facet/engine/geom"
)

// Vertex: pos2 (float32) + color4 (uint8) => 12 bytes.
const vertexStride = 12

// Layout is the wire layout of Vertex. Pipelines drawing shape buffers must
// declare exactly this layout.
var Layout = core.VertexLayout{
	Stride: vertexStride,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},                   // pos
		{Location: 1, Size: 4, Type: core.AttribUint8, Normalized: true, Offset: 2 * 4}, // color
	},
}

// Vertex is one tessellated shape vertex.
type Vertex struct {
	Pos   geom.Vec2
	Color colors.RGBA8
}

// ErrGradientFill is returned when tessellation meets a gradient fill.
// Gradients are part of the Fill surface but have no tessellation yet; the
// failure is explicit so callers can pick a recovery policy instead of
// getting silently wrong geometry.
var ErrGradientFill = errors.New("shape2d: gradient fill not implemented")

// Stroke is the outline of a shape. The zero value is the "no stroke"
// sentinel: zero width, fully transparent color.
type Stroke struct {
	Width float32
	Color colors.Color
}

// StrokeNone draws no outline.
var StrokeNone = Stroke{}

func NewStroke(width float32, color colors.Color) Stroke {
	return Stroke{Width: width, Color: color}
}

// None reports whether s is the "no stroke" sentinel.
func (s Stroke) None() bool { return s == StrokeNone }

type fillKind uint8

const (
	fillEmpty fillKind = iota
	fillSolid
	fillGradient
)

// Fill is the interior policy of a closed shape: empty, solid, or a
// two-color gradient (declared but unsupported, see ErrGradientFill).
type Fill struct {
	kind     fillKind
	from, to colors.Color
}

func NoFill() Fill               { return Fill{} }
func Solid(c colors.Color) Fill  { return Fill{kind: fillSolid, from: c} }
func Gradient(from, to colors.Color) Fill {
	return Fill{kind: fillGradient, from: from, to: to}
}

type shapeKind uint8

const (
	shapeLine shapeKind = iota
	shapeRect
	shapeCircle
)

// Shape is one drawable descriptor: a line, rectangle or circle together
// with its stroke and fill. Shapes are immutable once constructed.
type Shape struct {
	kind   shapeKind
	line   geom.Line
	rect   geom.Rect
	center geom.Vec2
	radius float32
	sides  int
	stroke Stroke
	fill   Fill
}

func LineShape(l geom.Line, stroke Stroke) Shape {
	return Shape{kind: shapeLine, line: l, stroke: stroke}
}

func Rectangle(r geom.Rect, stroke Stroke, fill Fill) Shape {
	return Shape{kind: shapeRect, rect: r, stroke: stroke, fill: fill}
}

// Circle approximates a circle with sides boundary segments. sides < 3 is
// not validated and degenerates quietly.
func Circle(center geom.Vec2, radius float32, sides int, stroke Stroke, fill Fill) Shape {
	return Shape{kind: shapeCircle, center: center, radius: radius, sides: sides, stroke: stroke, fill: fill}
}

// Tessellate expands the shape into triangles. Vertex counts are fixed per
// shape kind (see the per-kind helpers); the only error is ErrGradientFill.
func (s Shape) Tessellate() ([]Vertex, error) {
	switch s.kind {
	case shapeLine:
		return tessLine(s.line, s.stroke), nil
	case shapeRect:
		return tessRect(s.rect, s.stroke, s.fill)
	default:
		return tessCircle(s.center, s.radius, s.sides, s.stroke, s.fill)
	}
}

// tessLine emits a quad (2 triangles, 6 vertices) of the stroke's width
// centered on the segment. A zero-length line has no direction to widen
// along; it emits nothing rather than propagating NaNs into the buffer.
func tessLine(l geom.Line, stroke Stroke) []Vertex {
	if l.P1 == l.P2 {
		return nil
	}
	d := l.Dir()
	wx := stroke.Width / 2 * d.Y
	wy := stroke.Width / 2 * d.X
	c := stroke.Color.RGBA8()

	return []Vertex{
		{geom.V2(l.P1.X-wx, l.P1.Y+wy), c},
		{geom.V2(l.P1.X+wx, l.P1.Y-wy), c},
		{geom.V2(l.P2.X-wx, l.P2.Y+wy), c},
		{geom.V2(l.P2.X-wx, l.P2.Y+wy), c},
		{geom.V2(l.P1.X+wx, l.P1.Y-wy), c},
		{geom.V2(l.P2.X+wx, l.P2.Y-wy), c},
	}
}

// tessRect emits the four border quads (24 vertices, none when the stroke
// width is zero) and the fill. Borders are inset so the stroke sits inside
// the rectangle bounds; corners are not mitered, so a wide stroke shows a
// small gap or overlap at each corner. The solid fill is the rectangle inset
// by the stroke width (6 vertices).
func tessRect(r geom.Rect, stroke Stroke, fill Fill) ([]Vertex, error) {
	var verts []Vertex

	w := stroke.Width
	if w > 0 {
		h := w / 2
		borders := [4]geom.Line{
			geom.L(r.X1+h, r.Y1+w, r.X1+h, r.Y2), // left
			geom.L(r.X2-h, r.Y1, r.X2-h, r.Y2-w), // right
			geom.L(r.X1+w, r.Y2-h, r.X2, r.Y2-h), // top
			geom.L(r.X1, r.Y1+h, r.X2-w, r.Y1+h), // bottom
		}
		verts = make([]Vertex, 0, len(borders)*6+6)
		for _, l := range borders {
			verts = append(verts, tessLine(l, stroke)...)
		}
	}

	switch fill.kind {
	case fillSolid:
		c := fill.from.RGBA8()
		in := geom.R(r.X1+w, r.Y1+w, r.X2-w, r.Y2-w)
		verts = append(verts,
			Vertex{geom.V2(in.X1, in.Y1), c},
			Vertex{geom.V2(in.X2, in.Y1), c},
			Vertex{geom.V2(in.X2, in.Y2), c},
			Vertex{geom.V2(in.X1, in.Y1), c},
			Vertex{geom.V2(in.X1, in.Y2), c},
			Vertex{geom.V2(in.X2, in.Y2), c},
		)
	case fillGradient:
		return nil, ErrGradientFill
	}
	return verts, nil
}

// tessCircle walks sides equal angular steps around the boundary. With a
// stroke it emits a ring of quads between the outer radius and
// radius-width (6*sides vertices); a solid fill is a center fan over the
// inner ring (3*sides vertices). Stroke widths beyond the radius are not
// validated and invert the ring.
func tessCircle(center geom.Vec2, radius float32, sides int, stroke Stroke, fill Fill) ([]Vertex, error) {
	outer := circlePoints(center, radius, sides)
	inner := outer

	var verts []Vertex
	if !stroke.None() {
		inner = circlePoints(center, radius-stroke.Width, sides)
		c := stroke.Color.RGBA8()
		verts = make([]Vertex, 0, sides*6)
		for i := 0; i+1 < len(inner); i++ {
			verts = append(verts,
				Vertex{inner[i], c}, Vertex{outer[i], c}, Vertex{outer[i+1], c},
				Vertex{inner[i], c}, Vertex{outer[i+1], c}, Vertex{inner[i+1], c},
			)
		}
	}

	switch fill.kind {
	case fillSolid:
		c := fill.from.RGBA8()
		cv := Vertex{center, c}
		// The last boundary point coincides with the first, so the final
		// iteration is the fan's closing triangle.
		for i := 0; i+1 < len(inner); i++ {
			verts = append(verts, cv, Vertex{inner[i], c}, Vertex{inner[i+1], c})
		}
	case fillGradient:
		return nil, ErrGradientFill
	}
	return verts, nil
}

// circlePoints returns sides+1 boundary points over [0, 2pi]; the first and
// last coincide.
func circlePoints(center geom.Vec2, radius float32, sides int) []geom.Vec2 {
	if sides <= 0 {
		return nil
	}
	pts := make([]geom.Vec2, 0, sides+1)
	step := 2 * math32.Pi / float32(sides)
	for i := 0; i <= sides; i++ {
		a := float32(i) * step
		pts = append(pts, geom.V2(
			center.X+radius*math32.Cos(a),
			center.Y+radius*math32.Sin(a),
		))
	}
	return pts
}
