package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/selection"
)

// Config supplies the calendar's construction-time settings.
type Config interface {
	BasePath() string
	Span() civil.Span
	Mode() selection.Mode
}

// LoadConfig reads the .datepick config file (searched in the working
// directory, then the home directory) and environment overrides with the
// DATEPICK prefix. Missing files fall back to defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.datepick.db")
	viper.SetDefault("minyear", 1900)
	viper.SetDefault("maxyear", 2100)
	viper.SetDefault("mode", "single")
	viper.SetConfigName(".datepick") // .yaml is implicit
	viper.SetEnvPrefix("DATEPICK")
	viper.AutomaticEnv()

	if override := os.Getenv("DATEPICK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	mode, err := selection.ParseMode(viper.GetString("mode"))
	if err != nil {
		return nil, err
	}

	span := civil.Span{
		MinYear: viper.GetInt("minyear"),
		MaxYear: viper.GetInt("maxyear"),
	}
	if span.MaxYear < span.MinYear {
		span.MinYear, span.MaxYear = span.MaxYear, span.MinYear
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		path = viper.GetString("path")
	}

	return &fileConfig{path: path, span: span, mode: mode}, nil
}

type fileConfig struct {
	path string
	span civil.Span
	mode selection.Mode
}

func (f *fileConfig) BasePath() string     { return f.path }
func (f *fileConfig) Span() civil.Span     { return f.span }
func (f *fileConfig) Mode() selection.Mode { return f.mode }

// StaticConfig is a Config with fixed values, for tests and embedding hosts
// that do not read config files.
type StaticConfig struct {
	Path     string
	YearSpan civil.Span
	PickMode selection.Mode
}

func (s StaticConfig) BasePath() string     { return s.Path }
func (s StaticConfig) Span() civil.Span     { return s.YearSpan }
func (s StaticConfig) Mode() selection.Mode { return s.PickMode }
