package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"St. Paul's", "st-paul-s"},
		{"O'Fallon", "o-fallon"},
		{"", ""},
		{"Austin", "austin"},
		{"TX", "tx"},
		{"Winston-Salem", "winston-salem"},
		{"  New   York  ", "new-york"},
		{"Fish & Chips", "fish-and-chips"},
		{"A&B", "a-and-b"},
		{"!!!", ""},
		{"--x--", "x"},
		{"Coeur d'Alene", "coeur-d-alene"},
		{"San José", "san-jos"},
		{"Emergency Maintenance Cost", "emergency-maintenance-cost"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	shape := regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)
	inputs := []string{"a b", "--", "Ünïcödé", "1st & 2nd", "x__y", "\t\n", "ALL CAPS!", "ends-with-"}
	for _, in := range inputs {
		got := Slugify(in)
		assert.Regexp(t, shape, got, "input %q", in)
		assert.Equal(t, got, Slugify(got), "slugify should be stable on its own output")
	}
}

func TestSubdomainLabel(t *testing.T) {
	assert.Equal(t, "austintx", SubdomainLabel("Austin", "TX"))
	assert.Equal(t, "newyorkny", SubdomainLabel("New York", "NY"))
	assert.Equal(t, "st.paulmn", SubdomainLabel("St. Paul", "MN"))
	assert.Equal(t, "winston-salemnc", SubdomainLabel("Winston-Salem", "NC"))
}

func TestValidHostLabel(t *testing.T) {
	assert.True(t, ValidHostLabel("austintx"))
	assert.True(t, ValidHostLabel("winston-salemnc"))
	assert.False(t, ValidHostLabel("st.paulmn"))
	assert.False(t, ValidHostLabel("o'fallonmo"))
	assert.False(t, ValidHostLabel("-x"))
	assert.False(t, ValidHostLabel(""))
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ValidHostLabel(string(long)))
	assert.True(t, ValidHostLabel(string(long[:63])))
}

func TestCollisions(t *testing.T) {
	got := Collisions([]string{"St. Paul", "St Paul", "Austin", "St. Paul", "Dallas"}, Slugify)
	assert.Equal(t, []Collision{{Slug: "st-paul", Sources: []string{"St Paul", "St. Paul"}}}, got)
	assert.Empty(t, Collisions([]string{"Austin", "Dallas"}, Slugify))
}
