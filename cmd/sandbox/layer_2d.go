package main

import (
	"log"
	"path/filepath"

	"github.com/chewxy/math32"

	"github.com/merrow/facet/engine/assets"
	"github.com/merrow/facet/engine/colors"
	"github.com/merrow/facet/engine/core"
	"github.com/merrow/facet/engine/geom"
	"github.com/merrow/facet/engine/gfx/shape2d"
	"github.com/merrow/facet/engine/gfx/sprite2d"
	"github.com/merrow/facet/engine/scene"
)

const fallbackAtlasSize = 64

// Layer2D draws a grid of stroked shapes plus a scrolling tiled sprite.
type Layer2D struct {
	cam            *scene.OrthoCamera2D
	shapePipe      core.Pipeline
	spritePipe     core.Pipeline
	atlas          core.Texture
	atlasW, atlasH int
	t              float32
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetPosition(float32(w)/2, float32(h)/2) // origin top-left

	vs, err := assets.ShaderSource("shape2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.ShaderSource("shape2d.frag")
	if err != nil {
		panic(err)
	}
	l.shapePipe, err = e.Renderer.CreatePipeline(core.PipelineDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		Layout:         shape2d.Layout,
		Blend:          true,
	})
	if err != nil {
		panic(err)
	}

	vs, err = assets.ShaderSource("sprite2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err = assets.ShaderSource("sprite2d.frag")
	if err != nil {
		panic(err)
	}
	l.spritePipe, err = e.Renderer.CreatePipeline(core.PipelineDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		Layout:         sprite2d.Layout,
		Blend:          true,
	})
	if err != nil {
		panic(err)
	}

	aw, ah, pixels, err := assets.LoadPNG(filepath.Join("assets", "textures", "atlas.png"))
	if err != nil {
		log.Printf("atlas: %v; using generated checkerboard", err)
		aw, ah = fallbackAtlasSize, fallbackAtlasSize
		pixels = checkerPixels(fallbackAtlasSize, 8)
	}
	l.atlasW, l.atlasH = aw, ah

	l.atlas, err = e.Renderer.CreateTexture(core.TextureDesc{
		Width:     aw,
		Height:    ah,
		Format:    core.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "repeat",
		WrapV:     "repeat",
	})
	if err != nil {
		panic(err)
	}
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	if l.atlas != nil {
		l.atlas.Release()
	}
}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.t += float32(dt)
	if _, wy := e.Input.Wheel(); wy != 0 {
		l.cam.SetZoom(l.cam.Zoom * (1 + 0.1*float32(wy)))
	}
	if e.Input.IsKeyDown(core.KeyZ) {
		l.cam.SetZoom(l.cam.Zoom / 1.02)
	}
	if e.Input.IsKeyDown(core.KeyX) {
		l.cam.SetZoom(l.cam.Zoom * 1.02)
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	const sw, sh = 32.0, 32.0
	width := l.cam.Width()
	height := l.cam.Height()
	rows := int(height / sh)
	cols := int(width / (sw / 2))

	sb := shape2d.NewBatch()
	for i := 0; i < rows; i++ {
		y := float32(i) * sh
		for j := 0; j < cols; j++ {
			x := float32(j)*sw - sw/2

			tint := colors.Color{float32(i) / float32(rows), float32(j) / float32(cols), 0.5, 0.75}
			if i*j%2 == 0 {
				sb.Add(shape2d.LineShape(
					geom.L(x, y, x+sw, y+sh),
					shape2d.NewStroke(1, tint),
				))
			} else {
				sb.Add(shape2d.Rectangle(
					geom.R(x, y, x+sw, y+sh),
					shape2d.NewStroke(2, tint),
					shape2d.NoFill(),
				))
			}
		}
	}
	sb.Add(shape2d.Circle(
		geom.V2(width/2, height/2),
		96+16*math32.Sin(l.t),
		64,
		shape2d.NewStroke(8, colors.Yellow),
		shape2d.Solid(colors.Black.WithAlpha(0.6)),
	))

	shapeBuf, err := sb.Finish(e.Renderer)
	if err != nil {
		panic(err)
	}
	defer shapeBuf.Release()

	// Tiled sprite strip, scrolled along X by batch offset.
	aw := float32(l.atlasW)
	tb := sprite2d.NewBatch(l.atlasW, l.atlasH)
	tb.Add(
		geom.R(0, 0, aw, float32(l.atlasH)),
		geom.R(0, height-sh*2, width, height),
		colors.White,
		sprite2d.Repeat{X: width / aw, Y: 1},
	)
	tb.Offset(-math32.Mod(l.t*32, aw), 0)

	spriteBuf, err := tb.Finish(e.Renderer)
	if err != nil {
		panic(err)
	}
	defer spriteBuf.Release()

	vp := l.cam.VP()
	if err := e.Renderer.Draw(core.DrawCmd{
		Pipe:     l.shapePipe,
		Buffer:   shapeBuf,
		Uniforms: map[string]any{"uVP": vp},
	}); err != nil {
		panic(err)
	}
	if err := e.Renderer.Draw(core.DrawCmd{
		Pipe:     l.spritePipe,
		Buffer:   spriteBuf,
		Uniforms: map[string]any{"uVP": vp},
		Texture:  l.atlas,
	}); err != nil {
		panic(err)
	}
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
		l.cam.SetPosition(float32(v.W)/2, float32(v.H)/2)
	}
	return false
}

// checkerPixels builds a cell x cell checkerboard RGBA8 atlas.
func checkerPixels(size, cell int) []byte {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			if (x/cell+y/cell)%2 == 0 {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xe0, 0xe0, 0xe0, 0xff
			} else {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0x30, 0x60, 0x90, 0xff
			}
		}
	}
	return pix
}
