// Package slug derives URL path segments and subdomain labels from free-text
// city and state names.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens  = regexp.MustCompile(`-{2,}`)
	hostLabelPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
)

// maxHostLabel is the DNS limit for a single label.
const maxHostLabel = 63

// Slugify converts display text into a path segment matching
// [a-z0-9]+(-[a-z0-9]+)*, or "" when the text has no ASCII letters or digits.
//
//	Slugify("St. Paul's")  // "st-paul-s"
//	Slugify("Fish & Chips") // "fish-and-chips"
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SubdomainLabel is the host label for a city in subdomain mode: city and
// state concatenated, all whitespace removed, lowercased. Unlike Slugify it
// keeps punctuation, so callers check the result with ValidHostLabel.
func SubdomainLabel(city, state string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, city+state))
}

// ValidHostLabel reports whether label is usable as a single DNS label.
func ValidHostLabel(label string) bool {
	return len(label) <= maxHostLabel && hostLabelPattern.MatchString(label)
}
