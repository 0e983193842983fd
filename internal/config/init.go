package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// Init writes an example configuration to configPath. An existing file is
// only replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("file", configPath).Build()
	}

	example := Config{
		Version: CurrentVersion,
		Site: SiteConfig{
			Brand:  DefaultBrand,
			Origin: "${SITE_ORIGIN}",
			Mode:   DefaultMode,
		},
		Input:   InputConfig{Cities: DefaultCities},
		Pricing: PricingConfig{Low: DefaultPriceLow, High: DefaultPriceHigh},
		Output: OutputConfig{
			Directory:  DefaultOutput,
			RoutesFile: DefaultRoutesFile,
			ReportFile: DefaultReportFile,
		},
		Assets: AssetsConfig{
			Directory: ".",
			Image:     DefaultImage,
			Favicons:  DefaultFavicons,
		},
		Pages:   PagesConfig{TitleMaxRunes: DefaultTitleMaxRunes},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Copy:    content.DefaultCopy(),
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	//nolint:gosec // config files are meant to be readable
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("file", configPath).Build()
	}
	return nil
}
