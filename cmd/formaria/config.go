package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formaria/pkg/aria"
)

const (
	configFileName = "formaria"
	configFileType = "yaml"
	envPrefix      = "FORMARIA"

	cfgKeyRenderer       = "renderer"
	cfgKeyTheme          = "theme"
	cfgKeyVariant        = "variant"
	cfgKeyThemeManifests = "theme_manifests"
	cfgKeyValidationMode = "validation_mode"
	cfgKeyLivePolicy     = "live_policy"
	cfgKeyLogLevel       = "log_level"

	defaultRenderer = "vanilla"
	defaultLogLevel = "warn"
)

// config is the resolved CLI configuration. Flags win over it.
type config struct {
	Renderer       string
	Theme          string
	Variant        string
	ThemeManifests []string
	ValidationMode aria.ValidationMode
	LivePolicy     aria.LivePolicy
	LogLevel       string
}

// loadConfig reads formaria.yaml from path, or searches the working
// directory and $HOME/.config/formaria when path is empty. A missing file
// is not an error unless path was given explicitly. FORMARIA_* environment
// variables override file values.
func loadConfig(path string) (config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyRenderer, defaultRenderer)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "formaria"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	mode, err := aria.ParseValidationMode(v.GetString(cfgKeyValidationMode))
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", cfgKeyValidationMode, err)
	}

	var policy aria.LivePolicy
	if raw := v.GetStringMapString(cfgKeyLivePolicy); len(raw) > 0 {
		policy, err = aria.ParseLivePolicy(raw)
		if err != nil {
			return config{}, fmt.Errorf("config %s: %w", cfgKeyLivePolicy, err)
		}
	}

	return config{
		Renderer:       v.GetString(cfgKeyRenderer),
		Theme:          v.GetString(cfgKeyTheme),
		Variant:        v.GetString(cfgKeyVariant),
		ThemeManifests: v.GetStringSlice(cfgKeyThemeManifests),
		ValidationMode: mode,
		LivePolicy:     policy,
		LogLevel:       v.GetString(cfgKeyLogLevel),
	}, nil
}
