package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvVars holds the environment-supplied configuration.
type EnvVars struct {
	Port       string `env:"PORT" envDefault:"8080"`
	AppName    string `env:"APP_NAME" envDefault:"Venue Gateway"`
	DataFolder string `env:"DATA_FOLDER" envDefault:"./data"`
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	DemoMode   bool   `env:"DEMO_MODE" envDefault:"false"`
	Env        string `env:"ENV" envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func ParseEnvVars() (EnvVars, error) {
	var vars EnvVars
	if err := env.Parse(&vars); err != nil {
		return EnvVars{}, fmt.Errorf("config.ParseEnvVars: %w", err)
	}
	return vars, nil
}

func (e EnvVars) GetPort() string {
	port := e.Port
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetDataFolder() string {
	return e.DataFolder
}

// GetAPIBaseURL returns the base URL of the external backend API, without a
// trailing slash.
func (e EnvVars) GetAPIBaseURL() string {
	return strings.TrimSuffix(e.APIBaseURL, "/")
}

// GetDemoMode reports whether login is served locally without contacting the
// backend.
func (e EnvVars) GetDemoMode() bool {
	return e.DemoMode
}

func (e EnvVars) GetEnv() string {
	return e.Env
}
