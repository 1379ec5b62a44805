// Package template defines the engine seam reporters render through, mirroring
// the github.com/goliatone/go-template contract so engines stay swappable.
package template

import (
	"io"
)

// Renderer is the template engine contract HTML reporters rely on.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
