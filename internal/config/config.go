package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Data   DataConfig   `yaml:"data"`
	Output OutputConfig `yaml:"output"`
	State  StateConfig  `yaml:"state,omitempty"`
	Events EventsConfig `yaml:"events,omitempty"`
}

// SiteConfig holds site-wide values stamped into every generated page
type SiteConfig struct {
	URL            string `yaml:"url"`
	Name           string `yaml:"name"`
	ShortName      string `yaml:"short_name,omitempty"`
	TwitterHandle  string `yaml:"twitter_handle,omitempty"`
	DefaultOGImage string `yaml:"default_og_image,omitempty"`
	PublicPath     string `yaml:"public_path,omitempty"` // URL prefix for generated documents, usually empty
	Author         string `yaml:"author,omitempty"`
}

// DataConfig locates the JSON corpus and names the per-kind source files
type DataConfig struct {
	Dir           string   `yaml:"dir"`
	Repository    string   `yaml:"repository,omitempty"` // optional git URL to fetch the corpus from
	Branch        string   `yaml:"branch,omitempty"`
	LawFiles      []string `yaml:"law_files"`
	GuidanceFiles []string `yaml:"guidance_files"`
	TreatyFiles   []string `yaml:"treaty_files"`
	BlogFiles     []string `yaml:"blog_files"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Dir           string `yaml:"dir"`
	Clean         bool   `yaml:"clean"` // Clean output directory before generation
	IndexHTMLPath string `yaml:"index_html_path,omitempty"`
}

// StateConfig configures the optional generation-state cache
type StateConfig struct {
	Path string `yaml:"path,omitempty"` // sqlite file path, empty disables the cache
}

// EventsConfig configures optional broken-reference event publishing
type EventsConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; generation works without one
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "GCC Tax Laws"
	}
	if c.Site.ShortName == "" {
		c.Site.ShortName = "GTL"
	}
	if c.Site.URL == "" {
		c.Site.URL = "https://gcctaxlaws.com"
	}
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")
	if c.Site.TwitterHandle != "" && !strings.HasPrefix(c.Site.TwitterHandle, "@") {
		c.Site.TwitterHandle = "@" + c.Site.TwitterHandle
	}
	if c.Site.DefaultOGImage == "" {
		c.Site.DefaultOGImage = "/web-app-manifest-512x512.png"
	}
	if c.Site.Author == "" {
		c.Site.Author = "Team GTL"
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "./data"
	}
	if c.Data.Branch == "" {
		c.Data.Branch = "main"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./public/seo"
	}
	if c.Events.Enabled && c.Events.Subject == "" {
		c.Events.Subject = "taxsitegen.broken-refs"
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Site: SiteConfig{
			URL:            "https://gcctaxlaws.com",
			Name:           "GCC Tax Laws",
			ShortName:      "GTL",
			TwitterHandle:  "@gcctaxlaws",
			DefaultOGImage: "/web-app-manifest-512x512.png",
		},
		Data: DataConfig{
			Dir: "./data",
			LawFiles: []string{
				"1-gcc-vat-agreement.json",
				"3-uae-cit-47-country-law-articles-decisions.json",
			},
			GuidanceFiles: []string{
				"4-uae-cit-guidelines-guide.json",
			},
			TreatyFiles: []string{
				"dtaa-uae-1.json",
			},
			BlogFiles: []string{
				"blogs.json",
			},
		},
		Output: OutputConfig{
			Dir:           "./public/seo",
			Clean:         true,
			IndexHTMLPath: "./public/index.html",
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// loadEnvFiles loads environment variables from .env files, first hit wins.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			return
		}
	}
}
