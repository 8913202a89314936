package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	Render RenderConfig `yaml:"render"`
	Upload UploadConfig `yaml:"upload"`
	Paths  PathsConfig  `yaml:"paths"`
}

type FetchConfig struct {
	MaxResults int `yaml:"max_results"`
	TimeoutSec int `yaml:"timeout_sec"`
}

type RenderConfig struct {
	Command string `yaml:"command"` // renderer invocation, e.g. "npx remotion render"
	Entry   string `yaml:"entry"`   // composition bundle entry point
	FPS     int    `yaml:"fps"`
}

type UploadConfig struct {
	Privacy           string `yaml:"privacy"`
	Language          string `yaml:"language"`
	NotifySubscribers bool   `yaml:"notify_subscribers"`
	MadeForKids       bool   `yaml:"made_for_kids"`
	TimeoutSec        int    `yaml:"timeout_sec"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Ledger string `yaml:"ledger"`
}

// Load reads config.yaml and returns a Config struct with defaults applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Fetch.MaxResults == 0 {
		c.Fetch.MaxResults = 100
	}
	if c.Fetch.TimeoutSec == 0 {
		c.Fetch.TimeoutSec = 60
	}
	if c.Render.Command == "" {
		c.Render.Command = "npx remotion render"
	}
	if c.Render.Entry == "" {
		c.Render.Entry = "src/index.ts"
	}
	if c.Render.FPS == 0 {
		c.Render.FPS = 30
	}
	if c.Upload.Privacy == "" {
		c.Upload.Privacy = "public"
	}
	if c.Upload.Language == "" {
		c.Upload.Language = "ja"
	}
	if c.Upload.TimeoutSec == 0 {
		c.Upload.TimeoutSec = 600
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "./output"
	}
	if c.Paths.Ledger == "" {
		c.Paths.Ledger = "./output/status.json"
	}
}

// Credentials holds the YouTube OAuth secrets. They are read once from the
// environment here and passed into components explicitly; nothing else in
// the pipeline touches os.Getenv for secrets.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// LoadCredentials reads YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET and
// YOUTUBE_REFRESH_TOKEN, failing before any network call when one is missing.
func LoadCredentials() (*Credentials, error) {
	creds := &Credentials{
		ClientID:     os.Getenv("YOUTUBE_CLIENT_ID"),
		ClientSecret: os.Getenv("YOUTUBE_CLIENT_SECRET"),
		RefreshToken: os.Getenv("YOUTUBE_REFRESH_TOKEN"),
	}
	if creds.ClientID == "" || creds.ClientSecret == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET or YOUTUBE_REFRESH_TOKEN not set")
	}
	return creds, nil
}
