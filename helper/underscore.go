package helper

import (
	"strings"
	"unicode"
)

// Underscore converts a StructField name like "BahasaDaerah" to its JSON key
// form "bahasa_daerah".
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
