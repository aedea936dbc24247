package v1

import (
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]struct{}{
	"csv":  {},
	"xlsx": {},
	"xls":  {},
	"pdf":  {},
}

func extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func allowedFile(filename string) bool {
	_, ok := allowedExtensions[extension(filename)]
	return ok
}

// secureFilename reduces a client supplied name to a flat ASCII file name
// that is safe to join with a storage directory. It returns "" when nothing
// usable is left.
func secureFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '_', r == '.', r == '-':
			sb.WriteRune(r)
		}
	}

	return strings.Trim(sb.String(), "._")
}
