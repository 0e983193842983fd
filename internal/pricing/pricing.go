// Package pricing scales the base price range and dollar figures in copy text
// by a cost-of-living multiplier.
package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// floorTolerance absorbs float error so that 250*1.1 (=274.99999999999997) floors to 275.
const floorTolerance = 1e-9

// Multiplier is a validated, strictly positive scale factor.
type Multiplier float64

// Identity leaves every figure unchanged.
const Identity Multiplier = 1

// NewMultiplier validates a raw cost index.
func NewMultiplier(v float64) (Multiplier, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, errors.ConfigError("cost multiplier must be a positive number").
			WithContext("value", v).Build()
	}
	return Multiplier(v), nil
}

// Range is a low/high price pair in whole dollars.
type Range struct {
	Low  int
	High int
}

// NewRange validates a base price range.
func NewRange(low, high int) (Range, error) {
	if low <= 0 || high <= 0 {
		return Range{}, errors.ConfigError("price range must be positive").
			WithContext("value", strconv.Itoa(low)+"-"+strconv.Itoa(high)).Build()
	}
	if low > high {
		return Range{}, errors.ConfigError("price range low exceeds high").
			WithContext("value", strconv.Itoa(low)+"-"+strconv.Itoa(high)).Build()
	}
	return Range{Low: low, High: high}, nil
}

// ScaleRange floors low*m and high*m.
func ScaleRange(r Range, m Multiplier) Range {
	return Range{Low: scale(r.Low, m), High: scale(r.High, m)}
}

func scale(v int, m Multiplier) int {
	if m == Identity {
		return v
	}
	return int(math.Floor(float64(v)*float64(m) + floorTolerance))
}

// dollarAmount matches "$" followed by a digit run with optional comma groups.
var dollarAmount = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})+|\d+)`)

// ScaleEmbeddedAmounts rewrites every "$N" or "$N,NNN" token in text to the
// scaled amount, rounded to whole dollars with thousands separators. Tokens
// with a decimal part ("$1.50") or malformed grouping ("$12,34") are left
// alone. Text is returned unchanged when m is the identity.
func ScaleEmbeddedAmounts(text string, m Multiplier) string {
	if m == Identity || !strings.Contains(text, "$") {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range dollarAmount.FindAllStringSubmatchIndex(text, -1) {
		numStart, numEnd := loc[2], loc[3]
		if partialToken(text, numEnd) {
			continue
		}
		n, err := strconv.ParseInt(strings.ReplaceAll(text[numStart:numEnd], ",", ""), 10, 64)
		if err != nil {
			continue
		}
		b.WriteString(text[last:numStart])
		b.WriteString(humanize.Comma(int64(math.Round(float64(n) * float64(m)))))
		last = numEnd
	}
	b.WriteString(text[last:])
	return b.String()
}

// partialToken reports whether the amount ending at end continues as a
// decimal or a longer number the pattern did not consume.
func partialToken(text string, end int) bool {
	if end >= len(text) {
		return false
	}
	if isDigit(text[end]) {
		return true
	}
	return (text[end] == '.' || text[end] == ',') && end+1 < len(text) && isDigit(text[end+1])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// FormatDollars renders a whole-dollar amount as "$1,234".
func FormatDollars(v int) string {
	return "$" + humanize.Comma(int64(v))
}
