package hostinfo

import (
	"bufio"
	"strings"
)

// osEntry is one KEY=VALUE line from an os-release file, in file order.
type osEntry struct {
	Key   string
	Value string
}

// parseOSRelease reads os-release content into ordered key/value entries.
// Lines that do not form KEY=VALUE are skipped: the files on real hosts are
// messy and a partial read beats none. Surrounding single or double quotes
// are trimmed from values.
func parseOSRelease(content string) []osEntry {
	var entries []osEntry
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		key, value, ok := parseOSReleaseLine(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, osEntry{Key: key, Value: value})
	}
	return entries
}

func parseOSReleaseLine(line string) (key string, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(value)), true
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// distroVersion walks entries in file order the way login tools read
// os-release: a VERSION_ID line counts only after an ID line matched name,
// and a <NAME>_ID line counts only after a matching ID_LIKE line.
func distroVersion(entries []osEntry, name string) (string, bool) {
	idMatch, likeMatch := false, false
	likeVersionKey := strings.ToUpper(name) + "_ID"
	for _, e := range entries {
		switch {
		case e.Key == "ID" && e.Value == name:
			idMatch = true
		case e.Key == "VERSION_ID" && idMatch:
			return e.Value, true
		case e.Key == "ID_LIKE" && e.Value == name:
			likeMatch = true
		case e.Key == likeVersionKey && likeMatch:
			return e.Value, true
		}
	}
	return "", false
}
