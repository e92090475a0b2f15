// Package slug derives filesystem- and identifier-safe names from free-form
// text. Skill directory names and custom tool ids both go through it.
package slug

import "strings"

// Make lowercases s, keeps ASCII letters and digits, and collapses every
// other run of characters into a single dash. The result never starts or
// ends with a dash; text with nothing usable becomes "skill".
func Make(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "skill"
	}
	return b.String()
}
