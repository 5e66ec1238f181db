package core

// AttribType enumerates vertex attribute component types.
type AttribType int

const (
	AttribFloat32 AttribType = iota
	AttribUint8
)

// VertexAttrib describes one attribute within a vertex.
type VertexAttrib struct {
	Location   int
	Size       int // component count
	Type       AttribType
	Normalized bool // integer types mapped to [0,1] in the shader
	Offset     int  // byte offset within the vertex
}

// VertexLayout is the byte layout of one vertex. It is a hard contract
// between the packages that emit vertex data and the shader stage that
// consumes it.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// Buffer is an opaque handle to an uploaded vertex buffer.
type Buffer interface {
	VertexCount() int
	Release()
}

// Device is the buffer-creation capability consumed by the tessellation
// packages. CreateBuffer must accept empty input and return a valid
// zero-vertex buffer for it.
type Device interface {
	CreateBuffer(data []byte, vertexCount int, layout VertexLayout) (Buffer, error)
}

// Texture is an opaque handle to an uploaded texture.
type Texture interface {
	Size() (w, h int)
	Release()
}

// TextureFormat enumerates supported pixel formats.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes a texture upload. Pixels are tightly packed,
// row-major, top-left origin.
type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
}

// Pipeline is an opaque handle to a compiled shader pipeline.
type Pipeline interface{}

// PipelineDesc describes a shader pipeline. Layout must match the vertex
// buffers drawn with it.
type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	Layout         VertexLayout
	Blend          bool
}

// DrawCmd submits one buffer with one pipeline. Texture may be nil for
// untextured pipelines.
type DrawCmd struct {
	Pipe     Pipeline
	Buffer   Buffer
	Uniforms map[string]any
	Texture  Texture
}

// Renderer abstracts the graphics backend. It extends Device with the
// pipeline, texture and submission surface the demo app needs; the
// tessellation packages themselves only ever see the Device part.
type Renderer interface {
	Device

	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	Draw(cmd DrawCmd) error
	Shutdown()
}
