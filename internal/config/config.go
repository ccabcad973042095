package config

// Config is the read-only build/deploy-time configuration for the gateway.
// Values are supplied externally and never change while the process runs.
type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetDataFolder() string
	GetAPIBaseURL() string
	GetDemoMode() bool
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

func New() (Config, error) {
	vars, err := ParseEnvVars()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: vars}, nil
}
