package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the configuration values that may be given on the command
// line. It is bound to the root command's persistent flag set.
type Flags struct {
	Endpoint string
	Config   string
	LogLevel string
}

// Bind registers the flags on fs.
//
// Flags:
//
//	-e/--endpoint  hashtrack service endpoint
//	-c/--config    JSON config file path
//	--log-level    log level (debug, info, warn, error)
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Endpoint, "endpoint", "e", "", "The hashtrack service endpoint")
	fs.StringVarP(&f.Config, "config", "c", "", "The config file location")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func (f *Flags) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: f.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress: f.Endpoint,
		},
		JSONFilePath: f.Config,
	}
}
