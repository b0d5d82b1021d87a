// Package templates exposes the file templates embedded in the binary.
package templates

import (
	"embed"
	"fmt"

	"github.com/devmake/devmake/internal/messages"
)

//go:embed config.toml launchers
var files embed.FS

// Read returns the embedded template stored at path.
func Read(path string) ([]byte, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplateReadFmt, path, err)
	}
	return data, nil
}
