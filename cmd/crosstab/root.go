// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys, also the flag names.
const (
	keyLogLevel = "log-level"
	keyDataset  = "dataset"

	envPrefix       = "CROSSTAB"
	defaultLogLevel = "warn"
)

// app carries the state shared by every subcommand of one root command.
// Each newRootCmd call owns its viper instance and logger.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "crosstab",
		Short: "crosstab queries labeled contingency tables",
		Long: `crosstab exposes the HairEyeColor and Titanic cross-tabulations.
Cells are addressed by label (Axis=Label), axes are collapsed by name.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
		// Do not display usage on error
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (yaml, json or toml)")

	flags.String(keyLogLevel, defaultLogLevel, "log level (debug, info, warn, error)")
	checkNoErr(a.v.BindPFlag(keyLogLevel, flags.Lookup(keyLogLevel)))

	flags.StringP(keyDataset, "d", "", "default dataset when none is given as argument")
	checkNoErr(a.v.BindPFlag(keyDataset, flags.Lookup(keyDataset)))

	root.AddCommand(
		a.listCmd(),
		a.describeCmd(),
		a.showCmd(),
		a.getCmd(),
		a.sumCmd(),
		a.marginCmd(),
	)

	return root
}

// setup resolves configuration sources and configures the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if a.cfgFile != "" {
		a.log.WithField("file", a.v.ConfigFileUsed()).Debug("config loaded")
	}

	return nil
}

func checkNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
