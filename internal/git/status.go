package git

import (
	"strconv"
	"strings"
)

// ParseStatus parses git status --porcelain (v1) output.
// Empty or whitespace-only output yields a clean status.
// Lines too short to carry status columns are kept with their trimmed text as the path,
// so unexpected output still counts as a change.
func ParseStatus(output string) *RepositoryStatus {
	status := &RepositoryStatus{Entries: []StatusEntry{}}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Branch header only appears with --branch
		if strings.HasPrefix(line, "## ") {
			continue
		}

		if len(line) < 4 || line[2] != ' ' {
			status.Entries = append(status.Entries, StatusEntry{
				Index:    ChangeNone,
				WorkTree: ChangeNone,
				Path:     strings.TrimSpace(line),
			})
			continue
		}

		// XY PATH or XY ORIG -> PATH
		entry := StatusEntry{
			Index:    ChangeType(line[0]),
			WorkTree: ChangeType(line[1]),
		}
		rest := line[3:]
		if entry.isRenameOrCopy() {
			if orig, dest, ok := splitRename(rest); ok {
				entry.OldPath = unquote(orig)
				rest = dest
			}
		}
		entry.Path = unquote(rest)

		status.Entries = append(status.Entries, entry)
	}

	return status
}

// splitRename splits "ORIG -> PATH". A quoted ORIG is skipped as a whole
// so an arrow inside it does not split the line.
func splitRename(s string) (orig, dest string, ok bool) {
	const arrow = " -> "
	if strings.HasPrefix(s, `"`) {
		if end := closingQuote(s); end > 0 && strings.HasPrefix(s[end+1:], arrow) {
			return s[:end+1], s[end+1+len(arrow):], true
		}
	}
	return strings.Cut(s, arrow)
}

// closingQuote returns the index of the quote ending the C-quoted string at s[0], or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// unquote decodes a path git C-quoted because of special characters,
// including octal escapes for non-ASCII bytes ("caf\303\251.ts").
func unquote(path string) string {
	if len(path) < 2 || !strings.HasPrefix(path, `"`) || !strings.HasSuffix(path, `"`) {
		return path
	}
	if decoded, err := strconv.Unquote(path); err == nil {
		return decoded
	}
	return path[1 : len(path)-1]
}
