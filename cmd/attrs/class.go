package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"attr-builder/builder"
	"attr-builder/classes"
)

func newClassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "class [token...]",
		Short: "Print a class list",
		Long: `Print the class list built from the tokens. A token is class text, or
name=bool to add name conditionally. With --dedupe a false condition removes
the class added before.`,
		Example: `  attrs class btn btn-primary active=false
  attrs class --dedupe "c1 c2 c3" "c1 c2=false"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := builder.NewClasses(a.opts)
			if err != nil {
				return err
			}

			l, err := b.Build(classTokens(args)...)
			if err != nil {
				return err
			}

			if a.v.GetBool(keyDump) {
				spew.Fdump(cmd.ErrOrStderr(), l.Classes())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), l)
			return err
		},
	}
}

// classTokens turns name=bool tokens into conditions. Anything else is
// class text.
func classTokens(args []string) []any {
	values := make([]any, 0, len(args))

	for _, arg := range args {
		name, cond, found := strings.Cut(arg, "=")
		if !found {
			values = append(values, arg)
			continue
		}

		on, err := strconv.ParseBool(cond)
		if err != nil {
			values = append(values, arg)
			continue
		}

		values = append(values, classes.If(name, on))
	}

	return values
}
