package sitemode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

func TestParse(t *testing.T) {
	for _, m := range All {
		got, err := Parse(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := Parse("  Regular-City-Only ")
	require.NoError(t, err)
	assert.Equal(t, RegularCityOnly, got)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("subdomains")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Contains(t, err.Error(), "regular_city_only")
}

func TestTextRoundTrip(t *testing.T) {
	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("state")))
	assert.Equal(t, State, m)

	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "state", string(b))

	_, err = Mode(0).MarshalText()
	assert.Error(t, err)
	assert.False(t, Mode(42).Valid())
}

func TestEveryModeHasHomeAndContact(t *testing.T) {
	for _, m := range All {
		t.Run(m.String(), func(t *testing.T) {
			root := m.Pages().Root
			assert.Contains(t, root, KindHome)
			assert.Contains(t, root, KindContact)
			assert.True(t, m.Features().Contact)
		})
	}
}

func TestNavigationFeaturesMatchPageSets(t *testing.T) {
	for _, m := range All {
		t.Run(m.String(), func(t *testing.T) {
			f, root := m.Features(), m.Pages().Root
			assert.Equal(t, f.Cost, contains(root, KindCostIndex), "cost nav link needs a cost index page")
			assert.Equal(t, f.HowTo, contains(root, KindHowTo), "how-to nav link needs a how-to page")
		})
	}
}

func TestPageSets(t *testing.T) {
	assert.Equal(t, []PageKind{KindCity, KindCityCost}, Cost.Pages().PerCity)
	assert.True(t, Cost.Pages().CityIndexOnCost)
	assert.False(t, Regular.Pages().CityIndexOnCost)
	assert.Equal(t, []PageKind{KindState}, State.Pages().PerState)
	assert.True(t, Subdomain.Pages().PerHostSitemaps)
	assert.False(t, Subdomain.Pages().CityLinksOnHome)
}

func TestNavKey(t *testing.T) {
	assert.Equal(t, "cost", KindCityCost.NavKey())
	assert.Equal(t, "contact", KindCityContact.NavKey())
	assert.Equal(t, "howto", KindHowTo.NavKey())
	assert.Equal(t, "home", KindState.NavKey())
}

func contains(kinds []PageKind, k PageKind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}
