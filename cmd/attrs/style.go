package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"attr-builder/builder"
)

func newStyleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "style [declarations...]",
		Short:   "Print a style block",
		Long:    `Print the style block built from property:value declaration text.`,
		Example: `  attrs style "width: 100px" "height:200px;color:red"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := builder.NewStyles(a.opts)
			if err != nil {
				return err
			}

			values := make([]any, len(args))
			for i, arg := range args {
				values[i] = arg
			}

			s, err := b.Build(values...)
			if err != nil {
				return err
			}

			if a.v.GetBool(keyDump) {
				spew.Fdump(cmd.ErrOrStderr(), s.Styles())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}
