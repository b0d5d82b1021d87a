package launcher

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/devmake/devmake/internal/messages"
)

// Favorites is the desktop app bar pin list.
type Favorites interface {
	// Available reports whether a usable favorites store exists on this host.
	Available() bool
	List() ([]string, error)
	Set(favorites []string) error
}

const (
	gsettingsBin   = "gsettings"
	launcherSchema = "com.canonical.Unity.Launcher"
	favoritesKey   = "favorites"
)

// GSettings reads and writes the app bar favorites through the gsettings
// command line tool.
type GSettings struct {
	log *zap.Logger
}

// NewGSettings returns a GSettings favorites store.
func NewGSettings(log *zap.Logger) *GSettings {
	if log == nil {
		log = zap.NewNop()
	}
	return &GSettings{log: log}
}

// Available reports whether gsettings exists and carries the app bar schema.
func (g *GSettings) Available() bool {
	if _, err := exec.LookPath(gsettingsBin); err != nil {
		g.log.Debug("gsettings not on PATH", zap.Error(err))
		return false
	}
	out, err := exec.Command(gsettingsBin, "list-schemas").Output()
	if err != nil {
		g.log.Debug("list gsettings schemas", zap.Error(err))
		return false
	}
	return slices.Contains(strings.Fields(string(out)), launcherSchema)
}

// List returns the current favorites in bar order.
func (g *GSettings) List() ([]string, error) {
	out, err := exec.Command(gsettingsBin, "get", launcherSchema, favoritesKey).Output()
	if err != nil {
		return nil, fmt.Errorf(messages.LauncherFavoritesListFmt, err)
	}
	return parseStringArray(string(out))
}

// Set replaces the favorites list.
func (g *GSettings) Set(favorites []string) error {
	value := formatStringArray(favorites)
	if err := exec.Command(gsettingsBin, "set", launcherSchema, favoritesKey, value).Run(); err != nil {
		return fmt.Errorf(messages.LauncherFavoritesSetFmt, err)
	}
	g.log.Debug("wrote favorites", zap.Strings("favorites", favorites))
	return nil
}

// parseStringArray decodes the GVariant string array printed by gsettings,
// e.g. ['application://a.desktop', 'unity://running-apps']. Empty arrays
// arrive with a type annotation as "@as []".
func parseStringArray(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "@as"))
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf(messages.LauncherFavoritesParseFmt, raw, "missing array brackets")
	}
	s = strings.TrimSpace(s[1 : len(s)-1])
	var items []string
	for s != "" {
		quote := s[0]
		if quote != '\'' && quote != '"' {
			return nil, fmt.Errorf(messages.LauncherFavoritesParseFmt, raw, "item is not quoted")
		}
		var item strings.Builder
		i := 1
		closed := false
		for i < len(s) {
			c := s[i]
			if c == '\\' {
				if i+1 >= len(s) {
					return nil, fmt.Errorf(messages.LauncherFavoritesParseFmt, raw, "dangling escape")
				}
				i++
				item.WriteByte(s[i])
				i++
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			item.WriteByte(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf(messages.LauncherFavoritesParseFmt, raw, "unterminated quote")
		}
		items = append(items, item.String())
		s = strings.TrimSpace(s[i:])
		if s == "" {
			break
		}
		if s[0] != ',' {
			return nil, fmt.Errorf(messages.LauncherFavoritesParseFmt, raw, "missing comma between items")
		}
		s = strings.TrimSpace(s[1:])
		if s == "" {
			return nil, fmt.Errorf(messages.LauncherFavoritesParseFmt, raw, "trailing comma")
		}
	}
	return items, nil
}

// formatStringArray renders items as a GVariant string array literal.
func formatStringArray(items []string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + escaper.Replace(item) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
