package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/f3rmion/sss/rsramp"
	"github.com/f3rmion/sss/scheme"
	"github.com/f3rmion/sss/shamir"
)

// Scheme names accepted in Config.Scheme.
const (
	SchemeShamirGF256 = "shamir-gf256"
	SchemeReedSolomon = "rsramp"
)

// Config holds the parameters of a sharing round.
type Config struct {
	// Scheme selects the algorithm, SchemeShamirGF256 by default.
	Scheme string
	// Threshold is the number of shares needed to reconstruct (T).
	Threshold int
	// Ramp is the ramp degree (R); 1 gives classical threshold sharing.
	Ramp int
	// Num is the number of shares produced (N).
	Num int
	// Padding allows secrets whose size is not a multiple of Ramp.
	Padding bool
	Log     Log
}

// Log configures logging.
type Log struct {
	// Level is a logrus level name: trace, debug, info, warn, error.
	Level string
}

// Default returns a 3-of-5 classical Shamir configuration.
func Default() *Config {
	return &Config{
		Scheme:    SchemeShamirGF256,
		Threshold: 3,
		Ramp:      1,
		Num:       5,
		Log:       Log{Level: "info"},
	}
}

// Validate checks the parameters and fills in defaults.
func (c *Config) Validate() error {
	if c.Scheme == "" {
		c.Scheme = SchemeShamirGF256
	}
	if c.Ramp == 0 {
		c.Ramp = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	switch c.Scheme {
	case SchemeShamirGF256:
		if c.Num > 255 {
			return fmt.Errorf("%w: %s supports at most 255 shares, got %d", scheme.ErrInvalidParameter, c.Scheme, c.Num)
		}
	case SchemeReedSolomon:
		if c.Threshold+c.Num > rsramp.MaxShards {
			return fmt.Errorf("%w: %s needs threshold+num <= %d, got %d", scheme.ErrInvalidParameter, c.Scheme, rsramp.MaxShards, c.Threshold+c.Num)
		}
	default:
		return fmt.Errorf("%w: unknown scheme %q", scheme.ErrInvalidParameter, c.Scheme)
	}

	if c.Ramp < 1 || c.Ramp > c.Threshold || c.Threshold > c.Num {
		return fmt.Errorf("%w: need 1 <= ramp <= threshold <= num, got threshold=%d ramp=%d num=%d",
			scheme.ErrInvalidParameter, c.Threshold, c.Ramp, c.Num)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Load reads a configuration file and applies SSS_ environment overrides.
// Keys missing from the file keep the values from Default.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("sss")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("scheme", d.Scheme)
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("ramp", d.Ramp)
	v.SetDefault("num", d.Num)
	v.SetDefault("padding", d.Padding)
	v.SetDefault("log.level", d.Log.Level)
}

// SetupLogging applies the configured level to the standard logrus logger.
func (c *Config) SetupLogging() error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)
	return nil
}

// NewByteScheme builds the configured scheme for byte secrets and
// initialises it with the configured parameters.
func (c *Config) NewByteScheme() (scheme.Scheme[uint8], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []scheme.Option
	if c.Padding {
		opts = append(opts, scheme.WithPadding())
	}

	var s scheme.Scheme[uint8]
	switch c.Scheme {
	case SchemeReedSolomon:
		s = rsramp.New(opts...)
	default:
		s = shamir.NewGF256(opts...)
	}
	if err := s.Initialize(c.Threshold, c.Ramp, c.Num); err != nil {
		return nil, err
	}
	return s, nil
}
