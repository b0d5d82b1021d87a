package profile

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/devmake/devmake/internal/messages"
)

// PreviewAdd returns the unified diff Add would produce, without touching the
// profile or the process environment. The rendered block captures the current
// environment the same way Add would.
func (m *Manager) PreviewAdd(tag string, vars []Var) (string, error) {
	if err := validateSpec(tag, vars); err != nil {
		return "", err
	}
	current, _, err := m.read()
	if err != nil {
		return "", err
	}
	block, _ := renderBlock(tag, vars, m.sys.Getenv)
	updated := removeBlocks(current, Header(tag)) + block
	return m.renderDiff(current, updated), nil
}

// PreviewRemove returns the unified diff Remove would produce. An empty
// string means the profile would not change.
func (m *Manager) PreviewRemove(tag string) (string, error) {
	if strings.TrimSpace(tag) == "" {
		return "", specErrorf(messages.ProfileTagRequired)
	}
	current, found, err := m.read()
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	updated := removeBlocks(current, Header(tag))
	return m.renderDiff(current, updated), nil
}

func (m *Manager) renderDiff(from, to string) string {
	if from == to {
		return ""
	}
	return udiff.Unified(m.path+" (current)", m.path+" (updated)", from, to)
}
