package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath        = "toyrobot.yaml"
	DefaultSize        = 5
	DefaultExitCommand = "*EXIT"
	DefaultListen      = ":8080"
)

// Config holds the runner settings.
type Config struct {
	Table       Table  `yaml:"table"`
	ExitCommand string `yaml:"exit_command"`
	Listen      string `yaml:"listen"`
	ShowGrid    bool   `yaml:"show_grid"`
}

type Table struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() *Config {
	return &Config{
		Table:       Table{Width: DefaultSize, Height: DefaultSize},
		ExitCommand: DefaultExitCommand,
		Listen:      DefaultListen,
	}
}

// Load reads the YAML file at path over the defaults and then applies
// TOYROBOT_* environment overrides. A missing file is only an error when
// path is not DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		log.Printf("Loaded configuration from %s", path)
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := map[string]*int{
		"TOYROBOT_WIDTH":  &c.Table.Width,
		"TOYROBOT_HEIGHT": &c.Table.Height,
	}
	for name, dst := range ints {
		v := getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
	}
	if v := getenv("TOYROBOT_EXIT"); v != "" {
		c.ExitCommand = v
	}
	if v := getenv("TOYROBOT_LISTEN"); v != "" {
		c.Listen = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Table.Width < 1 || c.Table.Height < 1 {
		return fmt.Errorf("table size %dx%d: width and height must be at least 1", c.Table.Width, c.Table.Height)
	}
	if strings.TrimSpace(c.ExitCommand) == "" {
		return errors.New("exit command must not be empty")
	}
	return nil
}
