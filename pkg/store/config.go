package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath = "~/.chessboard.db"
	configEnv   = "CHESSBOARD_CONFIG_PATH"
)

// Config describes where and how the board is persisted, plus the display
// defaults the commands start from.
type Config interface {
	BasePath() string
	Driver() Driver
	LogLevel() string
	LogFormat() string
	Display() string
	Layout() string
	Confirm() bool
}

// LoadConfig walks ./ and $CHESSBOARD_CONFIG_PATH for a .chessboard.yaml file
// and layers CHESSBOARD_* env vars on top.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("driver", string(DriverDiskv))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("display", "number")
	v.SetDefault("layout", "flat")
	v.SetDefault("confirm", true)
	v.SetConfigName(".chessboard") // .yaml is implicit
	v.SetEnvPrefix("CHESSBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(configEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	driver, err := ParseDriver(v.GetString("driver"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:       path,
		DriverName: driver,
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		DisplayAs:  v.GetString("display"),
		LayoutAs:   v.GetString("layout"),
		AskFirst:   v.GetBool("confirm"),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	DriverName Driver `json:"driver"`
	Level      string `json:"logLevel"`
	Format     string `json:"logFormat"`
	DisplayAs  string `json:"display"`
	LayoutAs   string `json:"layout"`
	AskFirst   bool   `json:"confirm"`
	ConfigFile string `json:"configFile,omitempty"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) Driver() Driver    { return f.DriverName }
func (f *fileConfig) LogLevel() string  { return f.Level }
func (f *fileConfig) LogFormat() string { return f.Format }
func (f *fileConfig) Display() string   { return f.DisplayAs }
func (f *fileConfig) Layout() string    { return f.LayoutAs }
func (f *fileConfig) Confirm() bool     { return f.AskFirst }

// ConfigFileUsed reports the config file that was read, if any.
func ConfigFileUsed(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.ConfigFile
	}
	return ""
}

// WithDriver returns cfg with the driver replaced.
func WithDriver(cfg Config, d Driver) Config {
	return &overrideConfig{Config: cfg, driver: d}
}

type overrideConfig struct {
	Config
	driver Driver
}

func (o *overrideConfig) Driver() Driver { return o.driver }
