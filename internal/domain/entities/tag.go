package entities

import "strings"

type Tag struct {
	Id   uint
	Name string
}

// NormalizeTagNames trims and deduplicates tag names while keeping the
// order they first appeared in. Resolving the result against storage must
// never create two rows for the same name.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
