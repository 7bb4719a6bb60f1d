package store

import (
	"log"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where dashboard state lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves configuration from a .tabletop file, TABLETOP_*
// environment variables, and built-in defaults, in that order of precedence.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultBasePath())
	viper.SetConfigName(".tabletop") // .yaml is implicit
	viper.SetEnvPrefix("TABLETOP")
	viper.AutomaticEnv()

	if override := os.Getenv("TABLETOP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

// Location returns the latitude and longitude configured for the weather
// widget, false when either is unset.
func Location() (lat, lon float64, ok bool) {
	if !viper.IsSet("latitude") || !viper.IsSet("longitude") {
		return 0, 0, false
	}
	return viper.GetFloat64("latitude"), viper.GetFloat64("longitude"), true
}

func defaultBasePath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".tabletop.db"
	}
	return filepath.Join(home, ".tabletop.db")
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
