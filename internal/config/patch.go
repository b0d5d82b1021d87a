package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	// toml is used for syntax validation only; the actual edit is custom
	// line-based parsing so comments and layout survive a config set.
	toml "github.com/pelletier/go-toml"

	"github.com/devmake/devmake/internal/messages"
)

type tomlSection struct {
	name  string
	lines []string
}

type tomlDocument struct {
	preamble []string
	sections []*tomlSection
}

type keyLine struct {
	indent    string
	commented bool
}

var (
	bareKeyPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	errControlChars = errors.New("contains control characters")
)

// Patch sets key (dotted section.name form) to rawValue in content,
// preserving comments and layout. Boolean keys from the registry get an
// unquoted true or false; everything else is written as a quoted string.
// The patched document is validated strictly before it is returned.
func Patch(content []byte, source, key, rawValue string) ([]byte, error) {
	section, name, found := strings.Cut(key, ".")
	if !found || !bareKeyPattern.MatchString(section) || !bareKeyPattern.MatchString(name) {
		return nil, fmt.Errorf(messages.ConfigPatchKeyEscapeFmt, key)
	}
	value, err := formatValue(key, rawValue)
	if err != nil {
		return nil, err
	}
	if _, err := toml.LoadBytes(content); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFmt, source, err)
	}

	doc := parseDocument(string(content))
	setKeyLine(doc.section(section), name, value)
	out := doc.render()

	if _, err := Parse([]byte(out), source); err != nil {
		return nil, fmt.Errorf(messages.ConfigPatchParseFmt, err)
	}
	return []byte(out), nil
}

// formatValue renders rawValue as a TOML literal for key.
func formatValue(key, raw string) (string, error) {
	if def, ok := LookupKey(key); ok && def.Type == KeyBool {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf(messages.ConfigBoolInvalidFmt, key)
		}
		return strconv.FormatBool(v), nil
	}
	for _, r := range raw {
		if r < 0x20 && r != '\t' {
			return "", fmt.Errorf(messages.ConfigPatchValueQuoteFmt, raw, errControlChars)
		}
	}
	return strconv.Quote(raw), nil
}

// parseDocument splits content into a preamble and ordered [section] blocks.
func parseDocument(content string) tomlDocument {
	lines := strings.Split(content, "\n")
	doc := tomlDocument{}
	var current *tomlSection
	inMultiline := false
	for _, line := range lines {
		if name, ok := parseSectionHeader(line); ok && !inMultiline {
			current = &tomlSection{name: name, lines: []string{line}}
			doc.sections = append(doc.sections, current)
			continue
		}
		if current == nil {
			doc.preamble = append(doc.preamble, line)
		} else {
			current.lines = append(current.lines, line)
		}
		inMultiline = nextMultilineState(line, inMultiline)
	}
	return doc
}

// parseSectionHeader recognizes [name] and [[name]] table headers.
func parseSectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return "", false
	}
	if idx := strings.Index(trimmed, "#"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	if strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]") {
		name := strings.TrimSpace(trimmed[2 : len(trimmed)-2])
		return name, name != ""
	}
	if strings.HasSuffix(trimmed, "]") {
		name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		return name, name != ""
	}
	return "", false
}

// nextMultilineState tracks """ and ''' pairs so key edits skip lines
// inside multiline strings.
func nextMultilineState(line string, in bool) bool {
	for _, delim := range []string{`"""`, `'''`} {
		if strings.Count(line, delim)%2 == 1 {
			in = !in
		}
	}
	return in
}

// section returns the named block, creating one at the end when missing.
func (d *tomlDocument) section(name string) *tomlSection {
	for _, s := range d.sections {
		if s.name == name {
			return s
		}
	}
	s := &tomlSection{name: name, lines: []string{"[" + name + "]"}}
	d.sections = append(d.sections, s)
	return s
}

// setKeyLine replaces the first active key line, uncomments a commented
// one in place, or appends the key at the end of the block.
func setKeyLine(block *tomlSection, key, value string) {
	activeAt, commentedAt := -1, -1
	inMultiline := false
	for i := 1; i < len(block.lines); i++ {
		line := block.lines[i]
		if inMultiline {
			inMultiline = nextMultilineState(line, inMultiline)
			continue
		}
		if parsed, ok := parseKeyLine(line, key); ok {
			if !parsed.commented {
				if activeAt == -1 {
					activeAt = i
				}
			} else if commentedAt == -1 {
				commentedAt = i
			}
		}
		inMultiline = nextMultilineState(line, inMultiline)
	}
	newLine := key + " = " + value
	switch {
	case activeAt >= 0:
		block.lines[activeAt] = indentOf(block.lines[activeAt]) + newLine
	case commentedAt >= 0:
		block.lines[commentedAt] = indentOf(block.lines[commentedAt]) + newLine
	default:
		insertAt := len(block.lines)
		for insertAt > 1 && strings.TrimSpace(block.lines[insertAt-1]) == "" {
			insertAt--
		}
		block.lines = append(block.lines[:insertAt], append([]string{newLine}, block.lines[insertAt:]...)...)
	}
}

// parseKeyLine matches `key = ...` lines, commented or active.
func parseKeyLine(line, key string) (keyLine, bool) {
	indent := indentOf(line)
	trimmed := strings.TrimLeft(line[len(indent):], " \t")
	commented := false
	if strings.HasPrefix(trimmed, "#") {
		commented = true
		trimmed = strings.TrimLeft(strings.TrimPrefix(trimmed, "#"), " \t")
	}
	if !strings.HasPrefix(trimmed, key) {
		return keyLine{}, false
	}
	rest := strings.TrimSpace(trimmed[len(key):])
	if !strings.HasPrefix(rest, "=") {
		return keyLine{}, false
	}
	return keyLine{indent: indent, commented: commented}, true
}

func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// render reassembles the document with single blank lines between blocks.
func (d tomlDocument) render() string {
	out := append([]string{}, trimTrailingEmptyLines(d.preamble)...)
	for _, s := range d.sections {
		appendBlock(&out, s.lines)
	}
	return strings.Join(out, "\n") + "\n"
}

func appendBlock(output *[]string, block []string) {
	trimmed := trimTrailingEmptyLines(block)
	if len(trimmed) == 0 {
		return
	}
	if len(*output) > 0 && (*output)[len(*output)-1] != "" {
		*output = append(*output, "")
	}
	*output = append(*output, trimmed...)
}

func trimTrailingEmptyLines(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
