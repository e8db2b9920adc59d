package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "LINQDEMO"

	logLevelKey = "log_level"
	inputKey    = "input"
	delayKey    = "delay"
	countKey    = "count"

	defaultInput = "Uwe Riegel"
	defaultDelay = 400 * time.Millisecond
	defaultCount = 10
)

var v *viper.Viper

func initConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	v.SetDefault(inputKey, defaultInput)
	v.SetDefault(delayKey, defaultDelay)
	v.SetDefault(countKey, defaultCount)

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("fail to read config file", "error", err, "config_file", configFile)
			return fmt.Errorf("fail to read config file: %w", err)
		}
	}

	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its viper key (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", prefix, envVarSuffix))
			flagName = strings.ReplaceAll(f.Name, "-", "_")
		}

		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
		if f.Changed {
			v.Set(flagName, f.Value.String())
		}
	})
}

func getLogLevel() string {
	if v == nil {
		return logLevel
	}
	if v.IsSet(logLevelKey) {
		return v.GetString(logLevelKey)
	}
	return logLevel
}

func getInput() string {
	return v.GetString(inputKey)
}

func getDelay() time.Duration {
	return v.GetDuration(delayKey)
}

func getCount() int {
	return v.GetInt(countKey)
}
