package profile

import "strings"

// SlugFallback is returned when the input contains nothing usable.
const SlugFallback = "profile"

// Slugify derives a filesystem-stable key from a human name: lowercase
// ASCII letters and digits joined by single hyphens, no leading or trailing
// hyphen. Input that collapses to nothing yields SlugFallback.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			pendingHyphen = true
		}
	}
	if b.Len() == 0 {
		return SlugFallback
	}
	return b.String()
}
