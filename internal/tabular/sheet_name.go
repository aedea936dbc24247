package tabular

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxSheetNameLength = 31

var invalidSheetChars = strings.NewReplacer(
	":", "-",
	"\\", "-",
	"/", "-",
	"?", "-",
	"*", "-",
	"[", "-",
	"]", "-",
)

// SanitizeSheetName makes name acceptable as a worksheet name.
func SanitizeSheetName(name string) string {
	name = invalidSheetChars.Replace(name)
	name = strings.Trim(truncate(strings.Trim(name, "'"), maxSheetNameLength), "'")

	if strings.TrimSpace(name) == "" {
		return "Sheet"
	}

	return name
}

// SheetNames sanitises names and resolves case-insensitive duplicates by
// appending " (2)", " (3)" and so on.
func SheetNames(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))

	for i, n := range names {
		base := SanitizeSheetName(n)

		name := base
		for k := 2; used[strings.ToLower(name)]; k++ {
			suffix := fmt.Sprintf(" (%d)", k)
			name = truncate(base, maxSheetNameLength-utf8.RuneCountInString(suffix)) + suffix
		}

		used[strings.ToLower(name)] = true
		out[i] = name
	}

	return out
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n])
}
