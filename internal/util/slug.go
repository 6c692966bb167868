package util

import (
	"regexp"
	"strings"
)

var (
	slugDrop     = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\x1c-\x1f\x85\p{Z}-]`)
	slugCollapse = regexp.MustCompile(`[\s\v\x1c-\x1f\x85\p{Z}_-]+`)
	slugEdges    = regexp.MustCompile(`^-+|-+$`)
)

// Slugify lower-cases text, drops everything except letters, digits,
// underscores, whitespace and hyphens, joins the remaining words with
// single hyphens and trims hyphens at both ends.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugDrop.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugEdges.ReplaceAllString(s, "")
}
