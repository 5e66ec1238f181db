// Package glbackend implements core.Renderer on OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/merrow/facet/engine/core"
)

type RendererGL struct {
	win core.Window
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	// 2D only: no depth testing, painter's order.
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// --- Buffers ---

type bufferGL struct {
	vao, vbo uint32
	count    int
}

func (b *bufferGL) VertexCount() int { return b.count }

func (b *bufferGL) Release() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

// CreateBuffer uploads packed vertex data and records the attribute layout
// in a VAO. Zero-length data produces a valid empty buffer.
func (r *RendererGL) CreateBuffer(data []byte, vertexCount int, layout core.VertexLayout) (core.Buffer, error) {
	if layout.Stride > 0 && len(data) != vertexCount*layout.Stride {
		return nil, fmt.Errorf("buffer data is %d bytes, want %d (%d vertices x stride %d)",
			len(data), vertexCount*layout.Stride, vertexCount, layout.Stride)
	}

	b := &bufferGL{count: vertexCount}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), ptr, gl.STATIC_DRAW)

	for _, a := range layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(
			uint32(a.Location),
			int32(a.Size),
			attribGLType(a.Type),
			a.Normalized,
			int32(layout.Stride),
			unsafe.Pointer(uintptr(a.Offset)),
		)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b, nil
}

func attribGLType(t core.AttribType) uint32 {
	if t == core.AttribUint8 {
		return gl.UNSIGNED_BYTE
	}
	return gl.FLOAT
}

// --- Pipelines ---

type pipelineGL struct {
	program uint32
	blend   bool
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	return &pipelineGL{program: prog, blend: desc.Blend}, nil
}

// --- Textures ---

type textureGL struct {
	id   uint32
	w, h int
}

func (t *textureGL) Size() (int, int) { return t.w, t.h }

func (t *textureGL) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("texture pixels are %d bytes, want %d (%dx%d RGBA8)",
			len(desc.Pixels), desc.Width*desc.Height*4, desc.Width, desc.Height)
	}

	t := &textureGL{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, texFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, texFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, texWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, texWrap(desc.WrapV))

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func texFilter(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func texWrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- Submission ---

func (r *RendererGL) Draw(cmd core.DrawCmd) error {
	pipe, ok := cmd.Pipe.(*pipelineGL)
	if !ok {
		return fmt.Errorf("pipeline %T is not a GL pipeline", cmd.Pipe)
	}
	buf, ok := cmd.Buffer.(*bufferGL)
	if !ok {
		return fmt.Errorf("buffer %T is not a GL buffer", cmd.Buffer)
	}
	if buf.count == 0 {
		return nil
	}

	gl.UseProgram(pipe.program)
	if pipe.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, v := range cmd.Uniforms {
		if err := setUniform(pipe.program, name, v); err != nil {
			return err
		}
	}

	if cmd.Texture != nil {
		tex, ok := cmd.Texture.(*textureGL)
		if !ok {
			return fmt.Errorf("texture %T is not a GL texture", cmd.Texture)
		}
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		if err := setUniform(pipe.program, "uTex", int32(0)); err != nil {
			return err
		}
	}

	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(buf.count))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return nil
}

func setUniform(program uint32, name string, value any) error {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return fmt.Errorf("uniform %q not found", name)
	}
	switch v := value.(type) {
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	case float32:
		gl.Uniform1f(loc, v)
	case int32:
		gl.Uniform1i(loc, v)
	case int:
		gl.Uniform1i(loc, int32(v))
	default:
		return fmt.Errorf("unsupported uniform type %T for %q", value, name)
	}
	return nil
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
