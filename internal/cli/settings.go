package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override flags, for example
// RENDERMON_LOG_LEVEL or RENDERMON_UPDATE_INTERVAL.
const EnvPrefix = "RENDERMON"

// settings holds the values of every flag after environment overrides.
type settings struct {
	LogLevel string `mapstructure:"log-level"`
	NoColor  bool   `mapstructure:"no-color"`

	Config         string        `mapstructure:"config"`
	ID             string        `mapstructure:"id"`
	Nodes          int           `mapstructure:"nodes"`
	Work           time.Duration `mapstructure:"work"`
	UpdateInterval time.Duration `mapstructure:"update-interval"`
	Duration       time.Duration `mapstructure:"duration"`
	Refresh        time.Duration `mapstructure:"refresh"`
	Format         string        `mapstructure:"format"`
}

// loadSettings reads cmd's flags, with RENDERMON_* environment variables
// taking precedence over flag defaults but not over flags set explicitly.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("cannot bind flags: %w", err)
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("cannot decode settings: %w", err)
	}
	return &s, nil
}
