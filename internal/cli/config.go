package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cyclecheck/pkg/edgelist"
	"github.com/matzehuels/cyclecheck/pkg/errors"
)

// Config holds defaults that flags can override. It is read from
// $XDG_CONFIG_HOME/cyclecheck/config.toml unless --config names another file.
//
//	verbose = true
//	format = "text"
//
//	[serve]
//	addr = ":9000"
//	read_timeout = "5s"
type Config struct {
	Verbose bool        `toml:"verbose"`
	Format  string      `toml:"format"`
	Serve   ServeConfig `toml:"serve"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr        string   `toml:"addr"`
	ReadTimeout duration `toml:"read_timeout"`
}

// duration decodes TOML strings such as "10s" into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func defaultConfig() Config {
	return Config{
		Serve: ServeConfig{
			Addr:        defaultAddr,
			ReadTimeout: duration{defaultReadTimeout},
		},
	}
}

// loadConfig reads the config file at path on top of the defaults. An empty
// path means the default location, which may be absent.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, err
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Format != "" {
		if err := edgelist.ValidateFormat(cfg.Format); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
		}
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = defaultAddr
	}
	if cfg.Serve.ReadTimeout.Duration <= 0 {
		cfg.Serve.ReadTimeout.Duration = defaultReadTimeout
	}
	return cfg, nil
}

// configDir returns the config directory using XDG standard (~/.config/cyclecheck/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
