// Package resolve turns free-text provider, language, and use-case input
// into canonical catalog names. All matching happens on a normalized form of
// the input; raw text is never compared directly.
package resolve

import "strings"

// maxSlugLen bounds slugs so they stay usable as filesystem identifiers.
const maxSlugLen = 80

// Normalize lowercases s, collapses every run of non-alphanumeric characters
// to a single space, and trims the result.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Slug converts s to a hyphenated lowercase identifier: normalized form with
// spaces mapped to hyphens, leading/trailing hyphens stripped, truncated to
// maxSlugLen runes.
func Slug(s string) string {
	slug := strings.ReplaceAll(Normalize(s), " ", "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
		slug = strings.Trim(slug, "-")
	}
	return slug
}
