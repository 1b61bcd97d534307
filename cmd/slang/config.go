package main

import (
	"flag"
	"strconv"

	"github.com/npillmayer/schuko"
)

// flagConfig is an application configuration backed by command line flags.
type flagConfig map[string]string

var _ schuko.Configuration = flagConfig{}

// configFromFlags collects the values of all flags of a flag set, set or not.
func configFromFlags(fs *flag.FlagSet) flagConfig {
	conf := flagConfig{}
	fs.VisitAll(func(f *flag.Flag) {
		conf[f.Name] = f.Value.String()
	})
	return conf
}

// InitDefaults fills in defaults for keys which are not backed by a flag.
func (conf flagConfig) InitDefaults() {
	defaults := map[string]string{
		"tracing.adapter": "go",
		"trace":           "Error",
		"macros":          "true",
	}
	for k, v := range defaults {
		if _, ok := conf[k]; !ok {
			conf[k] = v
		}
	}
}

func (conf flagConfig) IsSet(key string) bool {
	_, ok := conf[key]
	return ok
}

func (conf flagConfig) GetString(key string) string {
	return conf[key]
}

func (conf flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(conf[key])
	return n
}

func (conf flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(conf[key])
	return b
}

func (conf flagConfig) IsInteractive() bool {
	return false
}
