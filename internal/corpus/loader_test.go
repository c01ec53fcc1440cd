package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
)

const lawFileJSON = `{
	"countryName": "UAE",
	"alpha3Code": "ARE",
	"flagCode": "AE",
	"laws": [
		{
			"lawFullName": "Federal Decree-Law No. 47 of 2022",
			"lawShortName": "cit-fdl-47-of-2022",
			"articles": [
				{"number": "1", "title": "Definitions", "orderIndex": 1,
				 "path": [{"name": "Chapter One"}, {"name": "Definitions"}]},
				{"number": 2, "title": "Numeric number field", "orderIndex": 2}
			],
			"decisions": [
				{"number": 35, "year": 2025, "type": "CD - Cabinet Decision", "title": "Cabinet Decision No. 35"}
			]
		}
	]
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_SingleObjectLawFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "laws.json", lawFileJSON)

	c := NewLoader(&config.DataConfig{Dir: dir, LawFiles: []string{"laws.json"}}).Load()

	require.Len(t, c.Countries, 1)
	assert.Equal(t, "UAE", c.Countries[0].Name)
	require.Len(t, c.Countries[0].Laws, 1)

	law := c.Countries[0].Laws[0]
	require.Len(t, law.Articles, 2)
	assert.Equal(t, "Chapter One", law.Articles[0].Path[0].Name)

	// Numeric JSON values decode to their string forms.
	assert.Equal(t, "2", law.Articles[1].Number.String())
	assert.Equal(t, "35", law.Decisions[0].Number.String())
	assert.Equal(t, "2025", law.Decisions[0].Year.String())
}

func TestLoad_ArrayFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs.json", `[
		{"title": "First Post", "published": true, "publishedDate": "2024-01-01"},
		{"title": "Draft", "published": false}
	]`)

	c := NewLoader(&config.DataConfig{Dir: dir, BlogFiles: []string{"blogs.json"}}).Load()

	require.Len(t, c.Blogs, 2)
	assert.True(t, c.Blogs[0].Eligible())
	assert.False(t, c.Blogs[1].Eligible())
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "present.json", `[{"title": "Post", "published": true}]`)

	c := NewLoader(&config.DataConfig{
		Dir:       dir,
		BlogFiles: []string{"missing.json", "present.json"},
	}).Load()

	assert.Len(t, c.Blogs, 1)
}

func TestLoad_MalformedJSONIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"countryName": "UAE", "laws": [`)
	writeFile(t, dir, "ok.json", lawFileJSON)

	c := NewLoader(&config.DataConfig{
		Dir:      dir,
		LawFiles: []string{"broken.json", "ok.json"},
	}).Load()

	require.Len(t, c.Countries, 1)
	assert.Equal(t, "UAE", c.Countries[0].Name)
}

func TestEligibility(t *testing.T) {
	assert.False(t, Article{Number: "1"}.Eligible(), "title required")
	assert.False(t, Article{Title: "t"}.Eligible(), "number required")
	assert.True(t, Article{Number: "1", Title: "t"}.Eligible())

	assert.True(t, Decision{Year: "2024"}.Eligible(), "any identifier suffices")
	assert.True(t, Decision{Title: "t"}.Eligible())
	assert.False(t, Decision{}.Eligible())

	assert.True(t, Guidance{UniqueCode: "C1"}.Eligible())
	assert.True(t, Guidance{Title: "t"}.Eligible())
	assert.False(t, Guidance{}.Eligible())

	assert.True(t, Treaty{Country2Alpha3Code: "ALB", Title: "t"}.Eligible())
	assert.False(t, Treaty{Title: "t"}.Eligible())

	assert.False(t, Blog{Title: "t"}.Eligible(), "unpublished excluded")
	assert.False(t, Blog{Published: true}.Eligible(), "untitled excluded")
}

func TestTreatyOfficial(t *testing.T) {
	unofficial := false
	assert.True(t, Treaty{}.Official(), "absent defaults to official")
	assert.False(t, Treaty{OfficialTranslation: &unofficial}.Official())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("tax-treaties")
	require.NoError(t, err)
	assert.Equal(t, KindTreaty, k)
	assert.Equal(t, "tax-treaties", k.Segment())

	_, err = ParseKind("statutes")
	assert.Error(t, err)
}
