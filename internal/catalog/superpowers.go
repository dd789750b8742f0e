package catalog

import "strings"

// ParseSuperpowers splits a superpowers field into its individual entries.
// The field is stored as a single string with " - " separating entries.
func ParseSuperpowers(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, " - ") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitEntry splits a list entry of the form "Title: body" into its title
// and body. Entries without a separator return the whole string as the
// title and an empty body.
func SplitEntry(entry string) (title, body string) {
	parts := strings.SplitN(entry, ":", 2)
	title = strings.TrimSpace(parts[0])
	if title == "" {
		title = entry
	}
	if len(parts) > 1 {
		body = strings.TrimSpace(parts[1])
	}
	return title, body
}
