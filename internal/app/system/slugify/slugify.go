// internal/app/system/slugify/slugify.go
package slugify

import (
	"fmt"
	"regexp"

	gosimple "github.com/gosimple/slug"
)

// Make returns the URL-safe base slug for a store name. Accented characters
// are transliterated, so "Café Books" becomes "cafe-books".
func Make(name string) string {
	return gosimple.Make(name)
}

// Pattern returns the anchored regex that matches a base slug and all of
// its numbered variants (base, base-2, base-3, …). Store creation queries
// this pattern to count collisions.
func Pattern(base string) string {
	return "^" + regexp.QuoteMeta(base) + "(-[0-9]+)?$"
}

// Next disambiguates a base slug against the slugs already taken. With no
// collisions the base is returned untouched; otherwise a numeric suffix one
// past the number of existing variants is appended.
func Next(base string, taken []string) string {
	if len(taken) == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, len(taken)+1)
}
