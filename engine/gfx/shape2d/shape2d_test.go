package shape2d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merrow/facet/engine/colors"
	"github.com/merrow/facet/engine/geom"
)

// perpDist is the distance from p to the infinite line through l.
func perpDist(l geom.Line, p geom.Vec2) float32 {
	d := l.Dir()
	r := p.Sub(l.P1)
	return math32.Abs(d.X*r.Y - d.Y*r.X)
}

func TestLineTessellation(t *testing.T) {
	l := geom.L(0, 0, 3, 4)
	const width = 2.0

	verts, err := LineShape(l, NewStroke(width, colors.Red)).Tessellate()
	require.NoError(t, err)
	require.Len(t, verts, 6)

	// Every vertex sits half a stroke width off the segment axis.
	for _, v := range verts {
		assert.InDelta(t, width/2, perpDist(l, v.Pos), 1e-5)
		assert.Equal(t, colors.Red8, v.Color)
	}
}

func TestLineTessellationAxisAligned(t *testing.T) {
	verts, err := LineShape(geom.L(0, 0, 10, 0), NewStroke(4, colors.White)).Tessellate()
	require.NoError(t, err)
	require.Len(t, verts, 6)

	for _, v := range verts {
		assert.InDelta(t, 2, math32.Abs(v.Pos.Y), 1e-6)
		assert.True(t, v.Pos.X == 0 || v.Pos.X == 10)
	}
}

func TestZeroLengthLineEmitsNothing(t *testing.T) {
	verts, err := LineShape(geom.L(5, 5, 5, 5), NewStroke(3, colors.White)).Tessellate()
	require.NoError(t, err)
	assert.Empty(t, verts)
}

func TestRectVertexCounts(t *testing.T) {
	r := geom.R(0, 0, 100, 50)
	stroke := NewStroke(2, colors.White)

	verts, err := Rectangle(r, stroke, NoFill()).Tessellate()
	require.NoError(t, err)
	assert.Len(t, verts, 24)

	verts, err = Rectangle(r, stroke, Solid(colors.Blue)).Tessellate()
	require.NoError(t, err)
	assert.Len(t, verts, 30)

	// No stroke: fill only.
	verts, err = Rectangle(r, StrokeNone, Solid(colors.Blue)).Tessellate()
	require.NoError(t, err)
	assert.Len(t, verts, 6)
}

func TestRectSolidFillInset(t *testing.T) {
	verts, err := Rectangle(geom.R(0, 0, 10, 10), NewStroke(2, colors.White), Solid(colors.Blue)).Tessellate()
	require.NoError(t, err)
	require.Len(t, verts, 30)

	// The fill is the last 6 vertices, inset by the stroke width.
	for _, v := range verts[24:] {
		assert.True(t, v.Pos.X == 2 || v.Pos.X == 8)
		assert.True(t, v.Pos.Y == 2 || v.Pos.Y == 8)
		assert.Equal(t, colors.Blue8, v.Color)
	}
}

func TestRectGradientFillFails(t *testing.T) {
	verts, err := Rectangle(geom.R(0, 0, 10, 10), StrokeNone, Gradient(colors.Red, colors.Blue)).Tessellate()
	assert.ErrorIs(t, err, ErrGradientFill)
	assert.Empty(t, verts)
}

func TestCircleVertexCounts(t *testing.T) {
	center := geom.V2(50, 50)
	const sides = 8

	// Fill only: one fan triangle per side.
	verts, err := Circle(center, 10, sides, StrokeNone, Solid(colors.Green)).Tessellate()
	require.NoError(t, err)
	assert.Len(t, verts, 3*sides)

	// Stroke only: one quad per side.
	verts, err = Circle(center, 10, sides, NewStroke(2, colors.White), NoFill()).Tessellate()
	require.NoError(t, err)
	assert.Len(t, verts, 6*sides)

	// Both.
	verts, err = Circle(center, 10, sides, NewStroke(2, colors.White), Solid(colors.Green)).Tessellate()
	require.NoError(t, err)
	assert.Len(t, verts, 9*sides)
}

func TestCircleStrokeRadii(t *testing.T) {
	center := geom.V2(0, 0)
	const (
		radius = 10.0
		width  = 3.0
		sides  = 16
	)

	verts, err := Circle(center, radius, sides, NewStroke(width, colors.White), NoFill()).Tessellate()
	require.NoError(t, err)
	require.Len(t, verts, 6*sides)

	// Ring vertices sit either on the outer or the inner radius.
	for _, v := range verts {
		d := v.Pos.Sub(center).Len()
		onOuter := math32.Abs(d-radius) < 1e-4
		onInner := math32.Abs(d-(radius-width)) < 1e-4
		assert.True(t, onOuter || onInner, "vertex at distance %v", d)
	}
}

func TestCircleFillOnUnstrokedRadius(t *testing.T) {
	center := geom.V2(0, 0)
	verts, err := Circle(center, 5, 4, StrokeNone, Solid(colors.Red)).Tessellate()
	require.NoError(t, err)
	require.Len(t, verts, 12)

	// Fan alternates center and boundary points at the full radius.
	for i, v := range verts {
		d := v.Pos.Sub(center).Len()
		if i%3 == 0 {
			assert.Equal(t, center, v.Pos)
		} else {
			assert.InDelta(t, 5, d, 1e-4)
		}
	}
}

func TestCircleGradientFillFails(t *testing.T) {
	verts, err := Circle(geom.V2(0, 0), 10, 8, StrokeNone, Gradient(colors.Red, colors.Blue)).Tessellate()
	assert.ErrorIs(t, err, ErrGradientFill)
	assert.Empty(t, verts)
}

func TestStrokeNoneSentinel(t *testing.T) {
	assert.True(t, StrokeNone.None())
	assert.True(t, Stroke{}.None())
	assert.False(t, NewStroke(1, colors.White).None())
	// Zero width alone is not the sentinel; the color must be transparent too.
	assert.False(t, NewStroke(0, colors.White).None())
}
