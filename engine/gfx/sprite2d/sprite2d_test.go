package sprite2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merrow/facet/engine/colors"
	"github.com/merrow/facet/engine/core"
	"github.com/merrow/facet/engine/geom"
)

type stubDevice struct {
	calls  int
	data   []byte
	count  int
	layout core.VertexLayout
}

type stubBuffer struct{ count int }

func (b stubBuffer) VertexCount() int { return b.count }
func (b stubBuffer) Release()         {}

func (d *stubDevice) CreateBuffer(data []byte, count int, layout core.VertexLayout) (core.Buffer, error) {
	d.calls++
	d.data, d.count, d.layout = data, count, layout
	return stubBuffer{count: count}, nil
}

func TestSingleEntryQuad(t *testing.T) {
	b := Singleton(64, 64,
		geom.R(0, 0, 32, 32),
		geom.R(10, 10, 42, 42),
		colors.White,
		RepeatDefault,
	)
	require.Equal(t, 1, b.Len())

	verts := b.Tessellate()
	require.Len(t, verts, 6)

	c := colors.White8
	assert.Equal(t, []Vertex{
		{geom.V2(10, 10), geom.V2(0, 0.5), c},
		{geom.V2(42, 10), geom.V2(0.5, 0.5), c},
		{geom.V2(42, 42), geom.V2(0.5, 0), c},
		{geom.V2(10, 10), geom.V2(0, 0.5), c},
		{geom.V2(10, 42), geom.V2(0, 0), c},
		{geom.V2(42, 42), geom.V2(0.5, 0), c},
	}, verts)
}

func TestRepeatScalesUVs(t *testing.T) {
	b := Singleton(64, 64,
		geom.R(0, 0, 64, 64),
		geom.R(0, 0, 256, 64),
		colors.White,
		Repeat{X: 4, Y: 1},
	)

	verts := b.Tessellate()
	require.Len(t, verts, 6)

	var maxU float32
	for _, v := range verts {
		if v.UV.X > maxU {
			maxU = v.UV.X
		}
	}
	assert.Equal(t, float32(4), maxU)
}

func TestOffsetTranslatesOnlyDestinations(t *testing.T) {
	b := NewBatch(128, 128)
	b.Add(geom.R(0, 0, 16, 16), geom.R(0, 0, 16, 16), colors.Red, RepeatDefault)
	b.Add(geom.R(16, 0, 32, 16), geom.R(100, 200, 116, 216), colors.White.WithAlpha(0.5), Repeat{X: 2, Y: 3})

	before := make([]entry, len(b.entries))
	copy(before, b.entries)

	b.Offset(5, -3)

	require.Len(t, b.entries, 2)
	for i, e := range b.entries {
		assert.Equal(t, before[i].dst.Translate(5, -3), e.dst)
		assert.Equal(t, before[i].src, e.src)
		assert.Equal(t, before[i].tint, e.tint)
		assert.Equal(t, before[i].rep, e.rep)
	}
}

func TestBatchVertexCountAndOrder(t *testing.T) {
	b := NewBatch(64, 64)
	b.Add(geom.R(0, 0, 16, 16), geom.R(0, 0, 16, 16), colors.Red, RepeatDefault)
	b.Add(geom.R(0, 0, 16, 16), geom.R(20, 0, 36, 16), colors.Green, RepeatDefault)
	b.Add(geom.R(0, 0, 16, 16), geom.R(40, 0, 56, 16), colors.Blue, RepeatDefault)

	verts := b.Tessellate()
	require.Len(t, verts, 18)

	for _, v := range verts[:6] {
		assert.Equal(t, colors.Red8, v.Color)
	}
	for _, v := range verts[6:12] {
		assert.Equal(t, colors.Green8, v.Color)
	}
	for _, v := range verts[12:] {
		assert.Equal(t, colors.Blue8, v.Color)
	}
}

func TestEmptyBatchFinish(t *testing.T) {
	dev := &stubDevice{}
	buf, err := NewBatch(64, 64).Finish(dev)
	require.NoError(t, err)
	assert.Equal(t, 0, buf.VertexCount())
	assert.Equal(t, 1, dev.calls)
	assert.Empty(t, dev.data)
}

func TestFinishCountsAndLayout(t *testing.T) {
	dev := &stubDevice{}
	b := Singleton(64, 64, geom.R(0, 0, 32, 32), geom.R(0, 0, 32, 32), colors.White, RepeatDefault)

	buf, err := b.Finish(dev)
	require.NoError(t, err)
	assert.Equal(t, 6, buf.VertexCount())
	assert.Equal(t, Layout, dev.layout)
	assert.Len(t, dev.data, 6*Layout.Stride)
}

func TestFinishTwiceFails(t *testing.T) {
	dev := &stubDevice{}
	b := NewBatch(64, 64)

	_, err := b.Finish(dev)
	require.NoError(t, err)

	_, err = b.Finish(dev)
	assert.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, 1, dev.calls)
}

func TestPackLayout(t *testing.T) {
	data := Pack([]Vertex{{
		Pos:   geom.V2(1, 2),
		UV:    geom.V2(0.5, 1),
		Color: colors.RGBA8{R: 10, G: 20, B: 30, A: 40},
	}})
	require.Len(t, data, vertexStride)

	assert.Equal(t, []byte{
		0x00, 0x00, 0x80, 0x3f, // pos.x = 1
		0x00, 0x00, 0x00, 0x40, // pos.y = 2
		0x00, 0x00, 0x00, 0x3f, // uv.x = 0.5
		0x00, 0x00, 0x80, 0x3f, // uv.y = 1
		10, 20, 30, 40,
	}, data)
}
