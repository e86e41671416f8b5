package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cybergodev/jsontree"
)

func newStringifyCommand(s settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stringify [file|-]",
		Short: "Parse a document and print it as compact JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0], cmd.InOrStdin(), s.maxSize())
			if err != nil {
				return err
			}

			var v jsontree.Value
			if err := s.parser().ParseBytes(&v, data); err != nil {
				return err
			}
			defer v.Free()

			out, err := jsontree.Stringify(&v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
