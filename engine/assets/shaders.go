package assets

import (
	"embed"
	"fmt"
)

// The GLSL sources for the shape2d/sprite2d pipelines ship inside the
// binary; no shader directory is needed next to it.
//
//go:embed shaders
var shaderFS embed.FS

// ShaderSource returns the named built-in GLSL source, null-terminated for
// gl.Str.
func ShaderSource(name string) (string, error) {
	b, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("shader %q: %w", name, err)
	}
	return string(b) + "\x00", nil
}
