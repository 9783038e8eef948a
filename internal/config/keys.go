package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKey is returned by Get and Set for keys outside the schema.
var ErrUnknownKey = errors.New("unknown configuration key")

// accessor binds a dotted key to its Config field.
type accessor struct {
	get func(*Config) string
	set func(*Config, string)
}

var keyAccessors = map[string]accessor{
	"journal.dir": {
		get: func(c *Config) string { return c.Journal.Dir },
		set: func(c *Config, v string) { c.Journal.Dir = v },
	},
	"journal.default_account": {
		get: func(c *Config) string { return c.Journal.DefaultAccount },
		set: func(c *Config, v string) { c.Journal.DefaultAccount = v },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) { c.Logging.Level = v },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) { c.Logging.Format = v },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) { c.Logging.File = v },
	},
	"output.format": {
		get: func(c *Config) string { return c.Output.Format },
		set: func(c *Config, v string) { c.Output.Format = v },
	},
}

// Keys returns every settable dotted key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(keyAccessors))
	for key := range keyAccessors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted configuration key.
func (c *Config) Get(key string) (string, error) {
	acc, ok := keyAccessors[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return acc.get(c), nil
}

// Set assigns the value of a dotted configuration key.
func (c *Config) Set(key, value string) error {
	acc, ok := keyAccessors[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	acc.set(c, value)
	return nil
}
