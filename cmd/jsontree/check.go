package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cybergodev/jsontree"
)

var errCheckFailed = errors.New("one or more documents failed to parse")

func newCheckCommand(s settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]...",
		Short: "Report whether each document is a single well-formed JSON value.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := s.parser()
			ok := color.New(color.FgGreen).SprintFunc()
			bad := color.New(color.FgRed).SprintFunc()

			failed := false
			for _, name := range args {
				data, err := readInput(name, cmd.InOrStdin(), s.maxSize())
				if err != nil {
					return err
				}

				var v jsontree.Value
				err = p.ParseBytes(&v, data)
				v.Free()

				var pe *jsontree.ParseError
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, ok("OK"))
				case errors.As(err, &pe):
					failed = true
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s at offset %d\n", name, bad(pe.Status), pe.Offset)
				default:
					return err
				}
			}
			if failed {
				return errCheckFailed
			}
			return nil
		},
	}
}
