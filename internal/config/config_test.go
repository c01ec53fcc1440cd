package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxsitegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  law_files:
    - laws.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "GCC Tax Laws", cfg.Site.Name)
	assert.Equal(t, "GTL", cfg.Site.ShortName)
	assert.Equal(t, "https://gcctaxlaws.com", cfg.Site.URL)
	assert.Equal(t, "/web-app-manifest-512x512.png", cfg.Site.DefaultOGImage)
	assert.Equal(t, "Team GTL", cfg.Site.Author)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, "main", cfg.Data.Branch)
	assert.Equal(t, "./public/seo", cfg.Output.Dir)
	assert.Equal(t, []string{"laws.json"}, cfg.Data.LawFiles)
}

func TestLoadNormalizesSiteValues(t *testing.T) {
	path := writeConfig(t, `
site:
  url: https://example.com/
  twitter_handle: example
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.Site.URL, "trailing slash trimmed")
	assert.Equal(t, "@example", cfg.Site.TwitterHandle, "handle gets @ prefix")
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TAXSITEGEN_TEST_DATA_DIR", "/srv/corpus")

	path := writeConfig(t, `
data:
  dir: ${TAXSITEGEN_TEST_DATA_DIR}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/corpus", cfg.Data.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadDefaultsEventSubject(t *testing.T) {
	path := writeConfig(t, `
events:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "taxsitegen.broken-refs", cfg.Events.Subject)
}

func TestInitWritesExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxsitegen.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GCC Tax Laws", cfg.Site.Name)
	assert.NotEmpty(t, cfg.Data.LawFiles)

	err = Init(path, false)
	require.Error(t, err, "refuses to overwrite without force")
	require.NoError(t, Init(path, true))
}
