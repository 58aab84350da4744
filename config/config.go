// Package config loads server configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RESTAURANTS_RESOURCE = "restaurants.json"

// Config carries all tunables, populated from MENDEL_* environment
// variables with sensible defaults for a local run.
type Config struct {
	Env        string `default:"prod"`
	ServerAddr string `envconfig:"SERVER_ADDR" default:":8080"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"redis:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	DirectoryBaseURL string `envconfig:"DIRECTORY_BASE_URL" default:"https://api.shtetl.example.com/v1"`

	// ThrottleWindow bounds how often filter results reach subscribers.
	ThrottleWindow time.Duration `envconfig:"THROTTLE_WINDOW" default:"120ms"`
	// SearchTimeout bounds how long a search request waits on the bus
	// before degrading to the unfiltered catalog.
	SearchTimeout   time.Duration `envconfig:"SEARCH_TIMEOUT" default:"2s"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"60m"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("mendel", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

// GetResourcePath resolves a resource file under the project's resources dir.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
