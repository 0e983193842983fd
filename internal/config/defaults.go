package config

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Default values applied to empty fields.
const (
	DefaultBrand         = "Emergency Maintenance Experts"
	DefaultMode          = "regular"
	DefaultPriceLow      = 80
	DefaultPriceHigh     = 250
	DefaultCities        = "cities.csv"
	DefaultOutput        = "public"
	DefaultRoutesFile    = "vercel.json"
	DefaultReportFile    = "build-report.json"
	DefaultTitleMaxRunes = 70
	DefaultImage         = "man-performing-emergency-maintenance.webp"
)

// DefaultFavicons are the icon files linked from every page.
var DefaultFavicons = []string{
	"favicon.ico",
	"favicon.svg",
	"favicon-16x16.png",
	"favicon-32x32.png",
	"apple-touch-icon.png",
}

func normalize(c *Config) {
	c.Site.Brand = strings.TrimSpace(c.Site.Brand)
	c.Site.Origin = strings.TrimSpace(c.Site.Origin)
	c.Site.SubdomainBase = strings.Trim(strings.ToLower(strings.TrimSpace(c.Site.SubdomainBase)), ".")
	c.Site.Mode = strings.TrimSpace(c.Site.Mode)
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Site.Brand == "" {
		c.Site.Brand = DefaultBrand
	}
	if c.Site.Origin == "" {
		c.Site.Origin = OriginFromBrand(c.Site.Brand)
	}
	if c.Site.Mode == "" {
		c.Site.Mode = DefaultMode
	}
	if c.Pricing.Low == 0 && c.Pricing.High == 0 {
		c.Pricing.Low, c.Pricing.High = DefaultPriceLow, DefaultPriceHigh
	}
	if c.Input.Cities == "" {
		c.Input.Cities = DefaultCities
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutput
	}
	if c.Output.RoutesFile == "" {
		c.Output.RoutesFile = DefaultRoutesFile
	}
	c.Input.Cities = c.Path(c.Input.Cities)
	c.Output.Directory = c.Path(c.Output.Directory)
	c.Output.RoutesFile = c.Path(c.Output.RoutesFile)
	if c.Output.ReportFile == "" {
		c.Output.ReportFile = filepath.Join(filepath.Dir(c.Output.Directory), DefaultReportFile)
	}
	c.Output.ReportFile = c.Path(c.Output.ReportFile)

	if c.Assets.Directory == "" {
		c.Assets.Directory = "."
	}
	c.Assets.Directory = c.Path(c.Assets.Directory)
	if c.Assets.Image == "" {
		c.Assets.Image = DefaultImage
	}
	if c.Assets.Favicons == nil {
		c.Assets.Favicons = append([]string(nil), DefaultFavicons...)
	}
	if c.Pages.TitleMaxRunes == 0 {
		c.Pages.TitleMaxRunes = DefaultTitleMaxRunes
	}
	c.Copy = c.Copy.WithDefaults()
}

// OriginFromBrand derives https://{brand}.com from the brand name, keeping
// only lowercase letters and digits.
func OriginFromBrand(brand string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(brand) {
		if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "https://" + b.String() + ".com"
}
