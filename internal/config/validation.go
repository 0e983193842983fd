package config

import (
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/pricing"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
	"git.home.luguber.info/inful/sitegen/internal/urls"
)

// configurationValidator runs each section check in order and stops at the
// first failure.
type configurationValidator struct {
	config *Config
}

func validate(c *Config) error {
	v := &configurationValidator{config: c}
	for _, check := range []func() error{
		v.validateVersion,
		v.validateSite,
		v.validatePricing,
		v.validatePages,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *configurationValidator) validateVersion() error {
	if v.config.Version != CurrentVersion {
		return errors.ConfigError("unsupported configuration version").
			WithContext("value", v.config.Version).
			WithContext("expected", CurrentVersion).Build()
	}
	return nil
}

func (v *configurationValidator) validateSite() error {
	mode, err := sitemode.Parse(v.config.Site.Mode)
	if err != nil {
		return err
	}
	v.config.mode = mode

	origin, err := urls.NormalizeOrigin(v.config.Site.Origin)
	if err != nil {
		return err
	}
	if origin == "" {
		return errors.ConfigError("site origin is required").
			WithContext("value", v.config.Site.Brand).Build()
	}
	v.config.Site.Origin = origin
	return nil
}

func (v *configurationValidator) validatePricing() error {
	_, err := pricing.NewRange(v.config.Pricing.Low, v.config.Pricing.High)
	return err
}

func (v *configurationValidator) validatePages() error {
	if v.config.Pages.TitleMaxRunes < 2 {
		return errors.ConfigError("pages.title_max_runes must be at least 2").
			WithContext("value", v.config.Pages.TitleMaxRunes).Build()
	}
	return nil
}
