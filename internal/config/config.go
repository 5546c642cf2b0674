// Package config reads the pixoo-bot configuration file.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"pixoo/pkg/canvas"
	"pixoo/pkg/mixer"
)

type Config struct {
	Device    DeviceConfig    `yaml:"device"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Wallhaven WallhavenConfig `yaml:"wallhaven"`
	Slideshow SlideshowConfig `yaml:"slideshow"`
	CacheDir  string          `yaml:"cache_dir"`
	Debug     bool            `yaml:"debug"`
}

type DeviceConfig struct {
	// Addr is the device IP or URL, empty to discover it on the LAN.
	Addr    string        `yaml:"addr"`
	Size    int           `yaml:"size"`
	Timeout time.Duration `yaml:"timeout"`
	Virtual bool          `yaml:"virtual"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
}

type WallhavenConfig struct {
	Key      string `yaml:"key"`
	Query    string `yaml:"query"`
	Category string `yaml:"category"`
	Purity   string `yaml:"purity"`
	Ratio    string `yaml:"ratio"`
	Sorting  string `yaml:"sorting"`
	Toplist  string `yaml:"toplist"`
	Random   bool   `yaml:"random"`
	MaxPage  int    `yaml:"max_page"`
}

type SlideshowConfig struct {
	Interval   time.Duration `yaml:"interval"`
	Brightness int           `yaml:"brightness"`
	Fit        string        `yaml:"fit"`
	History    int           `yaml:"history"`
}

// Default is used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file from fs.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Device.Size == 0 {
		c.Device.Size = 64
	}
	if c.Device.Timeout <= 0 {
		c.Device.Timeout = 10 * time.Second
	}
	if c.Wallhaven.Toplist == "" {
		c.Wallhaven.Toplist = "1M"
	}
	if c.Slideshow.Interval <= 0 {
		c.Slideshow.Interval = 5 * time.Minute
	}
	if c.Slideshow.Brightness <= 0 {
		c.Slideshow.Brightness = 50
	}
	if c.Slideshow.Fit == "" {
		c.Slideshow.Fit = mixer.Stretch.String()
	}
	if c.Slideshow.History <= 0 {
		c.Slideshow.History = 5
	}
}

func (c *Config) validate() error {
	if !canvas.Supported(c.Device.Size) {
		return errors.Wrapf(canvas.ErrUnsupportedSize, "device.size %d", c.Device.Size)
	}
	if _, err := mixer.ParseFitMode(c.Slideshow.Fit); err != nil {
		return errors.Wrap(err, "slideshow.fit")
	}
	if c.Slideshow.Brightness > 100 {
		return errors.Errorf("slideshow.brightness %d out of range", c.Slideshow.Brightness)
	}
	return nil
}

// FitMode is the parsed slideshow fit mode.
func (c *Config) FitMode() mixer.FitMode {
	fit, _ := mixer.ParseFitMode(c.Slideshow.Fit)
	return fit
}
