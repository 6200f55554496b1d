package constant

import "strings"

// parseEnum matches raw against the allowed values ignoring case and surrounding spaces.
func parseEnum[T ~string](raw string, allowed []T) (T, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if string(a) == v {
			return a, true
		}
	}
	var zero T
	return zero, false
}
