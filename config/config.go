// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"strings"
	"time"

	"github.com/gogama/synchttp"
	"github.com/gogama/synchttp/timeout"
	"github.com/gogama/synchttp/transport"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SYNCHTTP"

// Engine names accepted in the engine setting.
const (
	EngineNetHTTP = "nethttp"
	EngineResty   = "resty"
)

// Config holds client settings.
type Config struct {
	Engine             string        `mapstructure:"engine"`
	Timeout            time.Duration `mapstructure:"timeout"`
	FollowRedirects    bool          `mapstructure:"follow_redirects"`
	MaxRedirects       int           `mapstructure:"max_redirects"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	Proxy              string        `mapstructure:"proxy"`
	HTTP2              bool          `mapstructure:"http2"`
	LogLevel           string        `mapstructure:"log_level"`
}

// Load reads the configuration. Values come, from lowest to highest
// precedence, from the defaults, the file at path (skipped if path is
// empty), and SYNCHTTP_ environment variables. Each of envFiles is
// loaded into the environment first with godotenv; missing env files
// are ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "load env file %s", f)
		}
	}

	v := viper.New()

	v.SetDefault("engine", EngineNetHTTP)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("follow_redirects", false)
	v.SetDefault("max_redirects", transport.DefaultMaxRedirects)
	v.SetDefault("insecure_skip_verify", false)
	v.SetDefault("proxy", "")
	v.SetDefault("http2", false)
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	cfg.Engine = strings.ToLower(strings.TrimSpace(cfg.Engine))
	if cfg.Engine != EngineNetHTTP && cfg.Engine != EngineResty {
		return nil, errors.Errorf("invalid engine %q (must be %s or %s)", cfg.Engine, EngineNetHTTP, EngineResty)
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("invalid timeout (must not be negative)")
	}
	if cfg.MaxRedirects < 0 {
		return nil, errors.New("invalid max_redirects (must not be negative)")
	}

	return &cfg, nil
}

// NewEngine returns the transfer engine described by c. Resty's own
// diagnostic messages go to logger, which may be nil.
func (c *Config) NewEngine(logger *zap.Logger) transport.Engine {
	if c.Engine == EngineResty {
		return &transport.Resty{
			FollowRedirects:    c.FollowRedirects,
			MaxRedirects:       c.MaxRedirects,
			InsecureSkipVerify: c.InsecureSkipVerify,
			Proxy:              c.Proxy,
			Logger:             logger,
		}
	}

	return &transport.NetHTTP{
		FollowRedirects:    c.FollowRedirects,
		MaxRedirects:       c.MaxRedirects,
		InsecureSkipVerify: c.InsecureSkipVerify,
		Proxy:              c.Proxy,
		HTTP2:              c.HTTP2,
	}
}

// NewClient returns a ready client using the engine, timeout and
// logger described by c.
func (c *Config) NewClient(logger *zap.Logger) (*synchttp.Client, error) {
	return synchttp.New(
		synchttp.WithEngine(c.NewEngine(logger)),
		synchttp.WithTimeoutPolicy(timeout.Fixed(c.Timeout)),
		synchttp.WithLogger(logger),
	)
}
