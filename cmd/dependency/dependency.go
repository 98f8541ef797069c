/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dependency

import (
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	logger "d7y.io/preheat/internal/dflog"
	"d7y.io/preheat/pkg/types"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "PREHEAT"

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to configuration struct.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	rootName := cmd.Root().Name()
	cobra.OnInitialize(func() { initConfig(useConfigFile, rootName, config) })

	if !cmd.HasParent() {
		// Add common flags.
		flags := cmd.PersistentFlags()
		flags.Bool("console", false, "whether logger output records to the stdout")
		flags.Bool("verbose", false, "whether logger use debug level")
		if useConfigFile {
			flags.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is /etc/dragonfly/%s.yaml, it can also be set by env var: %s_CONFIG", rootName, EnvPrefix))
		}

		// Bind common flags.
		if err := viper.BindPFlags(flags); err != nil {
			panic(fmt.Errorf("bind flags to viper: %w", err))
		}

		// Add common cmds only on root cmd.
		cmd.AddCommand(VersionCmd)
	}
}

// SetupQuitSignalHandler sets up a signal handler for SIGINT and SIGTERM,
// handler runs once on the first signal.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signals {
			logger.Warnf("receive %s signal", sig)
			if !done {
				done = true
				handler()
				logger.Warnf("handle signal %s finish", sig)
			}
		}
	}()
}

// initConfig reads in config file and ENV variables if set.
func initConfig(useConfigFile bool, name string, config any) {
	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			// Use config file from the flag.
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("/etc/dragonfly")
			viper.SetConfigName(name)
			viper.SetConfigType("yaml")
		}

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				panic(fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err))
			}

			logger.Warnf("config file not found, use default values")
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		panic(fmt.Errorf("unmarshal config to struct: %w", err))
	}

	if viper.GetBool("verbose") {
		s, _ := yaml.Marshal(config)
		logger.Debugf("load config:\n%s", string(s))
	}
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.TagName = "mapstructure"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		pemContentHookFunc(),
	)
}

// pemContentHookFunc decodes PEM blocks and paths of PEM files into types.PEMContent.
func pemContentHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(types.PEMContent("")) {
			return data, nil
		}

		s := data.(string)
		if s == "" {
			return types.PEMContent(""), nil
		}

		return types.NewPEMContent(s)
	}
}
