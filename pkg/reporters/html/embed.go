package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the built-in report templates so callers can reuse or
// extend them without re-embedding.
func TemplatesFS() fs.FS {
	return templatesFS
}
