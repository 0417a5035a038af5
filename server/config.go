package server

import (
	"strings"

	"github.com/spf13/viper"
)

// keys to access config values. Each one is also bound to the upper-cased env variable
const (
	serverHostKey         string = "server_host"
	serverPortKey         string = "server_port"
	logLevelKey           string = "log_level"
	seedPostsKey          string = "seed_posts"
	corsAllowedOriginsKey string = "cors_allowed_origins"
	gopsAgentKey          string = "gops_agent"
)

// Config - server settings
type Config struct {
	Host               string
	Port               string
	LogLevel           string
	SeedPosts          bool
	CORSAllowedOrigins []string
	GopsAgent          bool
}

// Address - address the server listens on
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

// LoadConfig - reads settings from env variables and, if configPath is not empty, from the config file
// Env variables take precedence over the file
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault(serverHostKey, "0.0.0.0")
	v.SetDefault(serverPortKey, "5002")
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(seedPostsKey, true)
	v.SetDefault(corsAllowedOriginsKey, []string{"*"})
	v.SetDefault(gopsAgentKey, false)

	for _, key := range []string{serverHostKey, serverPortKey, logLevelKey, seedPostsKey,
		corsAllowedOriginsKey, gopsAgentKey} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Host:               v.GetString(serverHostKey),
		Port:               v.GetString(serverPortKey),
		LogLevel:           v.GetString(logLevelKey),
		SeedPosts:          v.GetBool(seedPostsKey),
		CORSAllowedOrigins: v.GetStringSlice(corsAllowedOriginsKey),
		GopsAgent:          v.GetBool(gopsAgentKey),
	}, nil
}
