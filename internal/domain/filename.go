package domain

import "strings"

// pathSeparators would let a task code name a file outside the output
// directory.
var pathSeparators = strings.NewReplacer("/", "_", `\`, "_")

// sanitizeNamePart replaces path separators with underscores. Every other
// character is kept so names stay exactly as typed.
func sanitizeNamePart(s string) string {
	return pathSeparators.Replace(s)
}
