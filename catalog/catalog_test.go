package catalog_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"folio/catalog"
	"folio/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var projects = []models.Project{
	{Title: "Weather Station", Description: "Collects sensor data", Category: "IoT", Technologies: []string{"Go", "MQTT"}},
	{Title: "Shop Front", Description: "A storefront with <b>cart</b>", Category: "Web", Technologies: []string{"TypeScript", "React"}},
	{Title: "Trail Map", Description: "Offline hiking maps", Category: "Mobile", Technologies: []string{"Kotlin"}},
	{Title: "Portfolio", Description: "This site", Category: "Web", Technologies: []string{"Go", "Gin"}},
	{Title: "Scratch", Description: "Unsorted experiments"},
	{Title: "Links", Description: `<p><strong>Hello</strong> <a href="https://x.example" rel="nofollow">site</a></p>`},
	{Title: "Cartoon", Description: "<p>Tom &amp; Jerry</p>"},
}

var allTitles = []string{"Weather Station", "Shop Front", "Trail Map", "Portfolio", "Scratch", "Links", "Cartoon"}

func titles(ps []models.Project) []string {
	return lo.Map(ps, func(p models.Project, _ int) string { return p.Title })
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query catalog.Query
		want  []string
	}{
		{
			name:  "empty query returns all",
			query: catalog.Query{},
			want:  allTitles,
		},
		{
			name:  "blank search returns all",
			query: catalog.Query{Search: "   "},
			want:  allTitles,
		},
		{
			name:  "search title case insensitive",
			query: catalog.Query{Search: "trail"},
			want:  []string{"Trail Map"},
		},
		{
			name:  "search description",
			query: catalog.Query{Search: "SENSOR"},
			want:  []string{"Weather Station"},
		},
		{
			name:  "search technologies",
			query: catalog.Query{Search: "go"},
			want:  []string{"Weather Station", "Portfolio"},
		},
		{
			name:  "search category",
			query: catalog.Query{Search: "mobile"},
			want:  []string{"Trail Map"},
		},
		{
			name:  "single category",
			query: catalog.Query{Categories: []string{"Web"}},
			want:  []string{"Shop Front", "Portfolio"},
		},
		{
			name:  "multiple categories",
			query: catalog.Query{Categories: []string{"Web", "IoT"}},
			want:  []string{"Weather Station", "Shop Front", "Portfolio"},
		},
		{
			name:  "search combined with category",
			query: catalog.Query{Search: "go", Categories: []string{"Web"}},
			want:  []string{"Portfolio"},
		},
		{
			name:  "search visible text of html description",
			query: catalog.Query{Search: "hello"},
			want:  []string{"Links"},
		},
		{
			name:  "search link text",
			query: catalog.Query{Search: "SITE"},
			want:  []string{"Portfolio", "Links"},
		},
		{
			name:  "search tag name does not match",
			query: catalog.Query{Search: "strong"},
			want:  []string{},
		},
		{
			name:  "search attribute name does not match",
			query: catalog.Query{Search: "href"},
			want:  []string{},
		},
		{
			name:  "search attribute value does not match",
			query: catalog.Query{Search: "nofollow"},
			want:  []string{},
		},
		{
			name:  "search link target does not match",
			query: catalog.Query{Search: "x.example"},
			want:  []string{},
		},
		{
			name:  "search raw markup does not match",
			query: catalog.Query{Search: "<p>"},
			want:  []string{},
		},
		{
			name:  "search unescaped entity",
			query: catalog.Query{Search: "tom & jerry"},
			want:  []string{"Cartoon"},
		},
		{
			name:  "no match",
			query: catalog.Query{Search: "rust"},
			want:  []string{},
		},
		{
			name:  "unknown category",
			query: catalog.Query{Categories: []string{"Games"}},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(catalog.Filter(projects, tt.query)))
		})
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name       string
		search     string
		categories []string
		want       catalog.Query
	}{
		{
			name: "nothing",
			want: catalog.Query{Categories: []string{}},
		},
		{
			name:       "trim and split",
			search:     "  go ",
			categories: []string{"Web, IoT", " ", "Mobile"},
			want:       catalog.Query{Search: "go", Categories: []string{"Web", "IoT", "Mobile"}},
		},
		{
			name:       "dedupe",
			categories: []string{"Web", "Web,Web"},
			want:       catalog.Query{Categories: []string{"Web"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ParseQuery(tt.search, tt.categories))
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"IoT", "Mobile", "Web"}, catalog.Categories(projects))
	assert.Empty(t, catalog.Categories(nil))
}

func TestCountByCategory(t *testing.T) {
	assert.Equal(t, map[string]int{"IoT": 1, "Web": 2, "Mobile": 1}, catalog.CountByCategory(projects))
}
