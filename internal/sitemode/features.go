package sitemode

// PageKind identifies one template of page in the manifest.
type PageKind string

const (
	KindHome      PageKind = "home"
	KindCostIndex PageKind = "cost_index"
	KindHowTo     PageKind = "howto"
	KindContact   PageKind = "contact"
	KindState     PageKind = "state"
	KindCity      PageKind = "city"
	KindCityCost  PageKind = "city_cost"

	// Per-host pages in subdomain mode.
	KindCityContact PageKind = "city_contact"
)

// Features are the optional site sections a mode exposes in navigation.
type Features struct {
	Cost    bool // cost guide link in nav/footer
	HowTo   bool // how-to guide link in nav/footer
	Contact bool // CTA to the contact page
}

// PageSet describes which page kinds a mode emits.
type PageSet struct {
	Root     []PageKind // emitted once, in this order
	PerState []PageKind
	PerCity  []PageKind
	// CityIndexOnCost lists per-city cost pages on the cost index page.
	CityIndexOnCost bool
	// CityLinksOnHome lists city (or state) pages on the home page.
	CityLinksOnHome bool
	// PerHostSitemaps writes a robots/sitemap pair for every city host.
	PerHostSitemaps bool
}

// Features returns the navigation features of m.
func (m Mode) Features() Features {
	switch m {
	case Regular:
		return Features{Cost: true, HowTo: true, Contact: true}
	case Cost:
		return Features{Cost: true, HowTo: true, Contact: true}
	case State:
		return Features{Contact: true}
	case Subdomain:
		return Features{Cost: true, Contact: true}
	case RegularCityOnly:
		return Features{Contact: true}
	default:
		return Features{Contact: true}
	}
}

// Pages returns the page set of m.
func (m Mode) Pages() PageSet {
	switch m {
	case Regular:
		return PageSet{
			Root:            []PageKind{KindHome, KindCostIndex, KindHowTo, KindContact},
			PerCity:         []PageKind{KindCity},
			CityLinksOnHome: true,
		}
	case Cost:
		return PageSet{
			Root:            []PageKind{KindHome, KindCostIndex, KindHowTo, KindContact},
			PerCity:         []PageKind{KindCity, KindCityCost},
			CityIndexOnCost: true,
			CityLinksOnHome: true,
		}
	case State:
		return PageSet{
			Root:            []PageKind{KindHome, KindContact},
			PerState:        []PageKind{KindState},
			PerCity:         []PageKind{KindCity},
			CityLinksOnHome: true,
		}
	case Subdomain:
		return PageSet{
			Root:            []PageKind{KindHome, KindCostIndex, KindContact},
			PerCity:         []PageKind{KindCity, KindCityCost, KindCityContact},
			PerHostSitemaps: true,
		}
	case RegularCityOnly:
		return PageSet{
			Root:            []PageKind{KindHome, KindContact},
			PerCity:         []PageKind{KindCity},
			CityLinksOnHome: true,
		}
	default:
		return PageSet{Root: []PageKind{KindHome, KindContact}}
	}
}

// NavKey is the navigation entry a page kind highlights.
func (k PageKind) NavKey() string {
	switch k {
	case KindCostIndex, KindCityCost:
		return "cost"
	case KindHowTo:
		return "howto"
	case KindContact, KindCityContact:
		return "contact"
	default:
		return "home"
	}
}
