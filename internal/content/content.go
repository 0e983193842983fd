// Package content assembles the copy shown on generated pages: location
// phrases, scaled cost paragraphs, clamped titles and Markdown guide bodies.
package content

import (
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/sitegen/internal/pricing"
)

// Placeholders recognized in copy text.
const (
	PlaceholderLocation = "{loc}"
	PlaceholderCostLow  = "{cost_lo}"
	PlaceholderCostHigh = "{cost_hi}"
)

// Ellipsis terminates clamped titles.
const Ellipsis = "…"

// Location is where a page's copy is scoped to. The zero value is site-wide.
type Location struct {
	City      string
	State     string // two-letter code
	StateName string // display name, used when City is empty
}

// CityLocation scopes copy to one city.
func CityLocation(city, state string) Location {
	return Location{City: city, State: state}
}

// StateLocation scopes copy to one state.
func StateLocation(state, name string) Location {
	return Location{State: state, StateName: name}
}

// Phrase is the {loc} replacement: " in Austin, TX", " in Texas" or sitewide.
func (l Location) Phrase(sitewide string) string {
	switch {
	case l.City != "" && l.State != "":
		return " in " + l.City + ", " + l.State
	case l.StateName != "":
		return " in " + l.StateName
	case l.State != "":
		return " in " + l.State
	default:
		return sitewide
	}
}

// Label is the short display form: "Austin, TX", "Texas" or "".
func (l Location) Label() string {
	return strings.TrimPrefix(l.Phrase(""), " in ")
}

// Fill replaces {loc} in text with the location phrase (empty site-wide).
func Fill(text string, loc Location) string {
	return strings.ReplaceAll(text, PlaceholderLocation, loc.Phrase(""))
}

// FillAbout replaces {loc} like Fill but reads " nationwide" site-wide.
func FillAbout(text string, loc Location) string {
	return strings.ReplaceAll(text, PlaceholderLocation, loc.Phrase(" nationwide"))
}

// LocationCost renders the local cost heading and paragraph. The paragraph
// text is escaped and the scaled range is inserted as <strong>$N</strong>.
func LocationCost(heading, body string, loc Location, r pricing.Range) (string, template.HTML) {
	p := template.HTMLEscapeString(Fill(body, loc))
	p = strings.ReplaceAll(p, PlaceholderCostLow, "<strong>"+pricing.FormatDollars(r.Low)+"</strong>")
	p = strings.ReplaceAll(p, PlaceholderCostHigh, "<strong>"+pricing.FormatDollars(r.High)+"</strong>")
	return Fill(heading, loc), template.HTML(p) //nolint:gosec // escaped above
}

// ClampTitle shortens title to at most maxRunes runes, ending in "…" when cut.
func ClampTitle(title string, maxRunes int) string {
	title = strings.TrimSpace(title)
	if maxRunes < 2 || utf8.RuneCountInString(title) <= maxRunes {
		return title
	}
	runes := []rune(title)
	return strings.TrimRight(string(runes[:maxRunes-1]), " \t") + Ellipsis
}

var (
	extPattern    = regexp.MustCompile(`\.[a-z0-9]+$`)
	sepPattern    = regexp.MustCompile(`[-_]+`)
	numberPattern = regexp.MustCompile(`\b\d+\b`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

// FilenameToAlt derives image alt text from a file name:
// "man-performing-emergency-maintenance.webp" -> "Man performing emergency maintenance".
func FilenameToAlt(name string) string {
	alt := strings.ToLower(name)
	alt = extPattern.ReplaceAllString(alt, "")
	alt = sepPattern.ReplaceAllString(alt, " ")
	alt = numberPattern.ReplaceAllString(alt, "")
	alt = strings.TrimSpace(spacesPattern.ReplaceAllString(alt, " "))
	if alt == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(alt)
	return strings.ToUpper(string(r)) + alt[size:]
}
