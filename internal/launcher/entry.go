package launcher

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/templates"
)

const entryTemplatePath = "launchers/devmake.desktop"

// Entry describes a freedesktop application launcher.
type Entry struct {
	// Filename is the desktop file name, e.g. "devmake-goland.desktop".
	Filename   string
	Name       string
	Icon       string
	TryExec    string
	Exec       string
	Comment    string
	Categories string
	// Extra holds raw KEY=VALUE lines appended after the standard keys.
	Extra []string
}

// Render produces the desktop entry file content.
func (e Entry) Render() (string, error) {
	raw, err := templates.Read(entryTemplatePath)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(entryTemplatePath).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf(messages.LauncherRenderFmt, e.Filename, err)
	}
	data := struct {
		Name, Icon, TryExec, Exec, Comment, Categories, Extra string
	}{e.Name, e.Icon, e.TryExec, e.Exec, e.Comment, e.Categories, strings.Join(e.Extra, "\n")}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf(messages.LauncherRenderFmt, e.Filename, err)
	}
	return buf.String(), nil
}

var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// StripTags removes HTML tags from content. Upstream descriptions often
// arrive as page snippets and would otherwise leak markup into comments.
func StripTags(content string) string {
	return tagPattern.ReplaceAllString(content, "")
}
