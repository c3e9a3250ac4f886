// SPDX-License-Identifier: MIT

// Package cli wires the cave path enumerator into the cavewalk command line.
package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys shared by flags, environment and the config file.
const (
	keyPolicy   = "policy"
	keyMaxDepth = "max-depth"
	keyLogLevel = "log-level"

	envPrefix      = "CAVEWALK"
	configFileName = ".cavewalk.yaml"

	policyBoth = "both"
)

// app carries per-invocation state shared by every subcommand.
type app struct {
	ctx     context.Context
	v       *viper.Viper
	logger  *log.Logger
	cfgFile string
	verbose bool
}

var exitFunc = os.Exit

// Execute is the entry point to running the CLI. Arguments come from os.Args.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		exitFunc(1)
	}
}

// NewRootCommand builds the cavewalk command tree with its own viper
// instance and logger, so independent invocations never share state.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	a := &app{
		ctx:    ctx,
		v:      viper.New(),
		logger: log.New(),
	}

	rootCmd := &cobra.Command{
		Use:          "cavewalk",
		Short:        "Count start-to-end paths through a cave system of big and small caves",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+configFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String(keyLogLevel, log.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String(keyPolicy, policyBoth, "revisit policy: strict, revisit-once or both")
	rootCmd.PersistentFlags().Int(keyMaxDepth, -1, "do not expand paths longer than this many steps (-1 = unlimited)")

	bindFlags(a.v, rootCmd.PersistentFlags(), keyPolicy, keyMaxDepth, keyLogLevel)

	rootCmd.AddCommand(newCountCommand(a), newPathsCommand(a))

	return rootCmd
}

// bindFlags makes each named flag the highest-priority source for its key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		if f := fs.Lookup(key); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// setup resolves configuration and logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.SetConfigFile(filepath.Join(home, configFileName))
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// the default location is optional; an explicit --config is not
		if a.cfgFile != "" || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return err
		}
	}

	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	level, err := log.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	if a.verbose && level < log.DebugLevel {
		level = log.DebugLevel
	}
	a.logger.SetLevel(level)
	if used := a.v.ConfigFileUsed(); used != "" && a.cfgFile != "" {
		a.logger.Debugf("Using config file %s", used)
	}

	return nil
}
