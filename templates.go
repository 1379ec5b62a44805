package formaudit

import (
	"io/fs"

	htmlreporter "github.com/goliatone/go-formaudit/pkg/reporters/html"
)

// EmbeddedTemplates exposes the built-in HTML report templates so callers can
// reuse or extend them without importing the reporter package directly.
func EmbeddedTemplates() fs.FS {
	return htmlreporter.TemplatesFS()
}
