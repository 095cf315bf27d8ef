package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attr-builder/options"
)

// Config keys, shared by flags, ATTRS_* variables and the config file.
const (
	keyFieldNaming  = "field_naming"
	keySymbolNaming = "symbol_naming"
	keyDeduplicate  = "deduplicate"
	keyVerbose      = "verbose"
	keyDump         = "dump"
)

type app struct {
	v          *viper.Viper
	configFile string
	opts       *options.Options
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "attrs",
		Short:         "Build class lists and style blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML options file")
	flags.String("field-naming", "", "field name convention (default kebab-case-underscore-to-hyphen)")
	flags.String("symbol-naming", "", "symbol name convention (default kebab-case-underscore-to-hyphen)")
	flags.Bool("dedupe", false, "keep every class at most once")
	flags.BoolP("verbose", "v", false, "log compilation and cache events")
	flags.Bool("dump", false, "dump the resolved entries")

	bind := map[string]string{
		keyFieldNaming:  "field-naming",
		keySymbolNaming: "symbol-naming",
		keyDeduplicate:  "dedupe",
		keyVerbose:      "verbose",
		keyDump:         "dump",
	}
	for key, flag := range bind {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	a.v.SetEnvPrefix("ATTRS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newClassCmd(a),
		newStyleCmd(a),
		newConfigCmd(a),
		newSchemaCmd(),
	)

	return root
}
