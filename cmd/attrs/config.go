package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"attr-builder/options"
)

// resolve builds the options: flags override ATTRS_* variables, which
// override the config file.
func (a *app) resolve(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.configFile != "" {
		// strict parse first, viper accepts unknown keys
		if _, err := options.LoadFile(a.configFile); err != nil {
			return err
		}

		a.v.SetConfigFile(a.configFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	dedupe := a.v.GetBool(keyDeduplicate)
	f := options.File{
		FieldNaming:  a.v.GetString(keyFieldNaming),
		SymbolNaming: a.v.GetString(keySymbolNaming),
		Deduplicate:  &dedupe,
	}

	opts, err := f.Options()
	if err != nil {
		return err
	}
	opts.Logger = a.logger
	a.opts = opts

	a.logger.Debug("options resolved",
		slog.String(keyFieldNaming, f.FieldNaming),
		slog.String(keySymbolNaming, f.SymbolNaming),
		slog.Bool(keyDeduplicate, dedupe))

	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved options as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dedupe := a.opts.Deduplicates()
			f := options.File{
				FieldNaming:  a.v.GetString(keyFieldNaming),
				SymbolNaming: a.v.GetString(keySymbolNaming),
				Deduplicate:  &dedupe,
			}

			data, err := f.Marshal()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
