package main

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

// fileConfig holds flag defaults read from --config. Flags given on the
// command line win over the file.
type fileConfig struct {
	LogLevel string        `yaml:"log_level"`
	Redis    string        `yaml:"redis"`
	TTL      time.Duration `yaml:"ttl"`
	Frames   string        `yaml:"frames"`
	Color    *bool         `yaml:"color"`
	Serve    struct {
		Addr  string        `yaml:"addr"`
		Delay time.Duration `yaml:"delay"`
		Step  *bool         `yaml:"step"`
	} `yaml:"serve"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
			WithMeta("path", path)
	}

	fc := &fileConfig{}
	if err := yaml.Unmarshal(raw, fc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file").
			WithMeta("path", path)
	}
	return fc, nil
}

// apply sets every flag the command knows about that the file provides
// and the command line left alone
func (fc *fileConfig) apply(cmd *cobra.Command) error {
	values := map[string]string{
		"log-level": fc.LogLevel,
		"redis":     fc.Redis,
		"frames":    fc.Frames,
		"addr":      fc.Serve.Addr,
	}
	if fc.TTL > 0 {
		values["ttl"] = fc.TTL.String()
	}
	if fc.Serve.Delay > 0 {
		values["delay"] = fc.Serve.Delay.String()
	}
	if fc.Color != nil {
		values["color"] = strconv.FormatBool(*fc.Color)
	}
	if fc.Serve.Step != nil {
		values["step"] = strconv.FormatBool(*fc.Serve.Step)
	}

	flags := cmd.Flags()
	for name, value := range values {
		if value == "" {
			continue
		}
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return errors.InvalidArgumentf("config value for %s: %v", name, err)
		}
	}
	return nil
}
