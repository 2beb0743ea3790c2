package service

import "strings"

// sanitizeModelOutput strips a single leading and a single trailing
// markdown code-fence marker (with an optional "json" language tag,
// case-insensitive) and trims surrounding whitespace. Models sometimes
// wrap their reply in fences despite being told not to.
func sanitizeModelOutput(raw string) string {
	s := strings.TrimSpace(raw)

	if lower := strings.ToLower(s); strings.HasPrefix(lower, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
