package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cybergodev/jsontree"
)

// treeStats counts the nodes of a value tree by type.
type treeStats struct {
	counts   map[jsontree.Type]int
	maxDepth int
}

func collectStats(v *jsontree.Value) treeStats {
	st := treeStats{counts: make(map[jsontree.Type]int)}
	st.walk(v, 0)
	return st
}

func (st *treeStats) walk(v *jsontree.Value, depth int) {
	st.counts[v.Type()]++
	if depth > st.maxDepth {
		st.maxDepth = depth
	}
	switch v.Type() {
	case jsontree.TypeArray:
		for i := 0; i < v.ArraySize(); i++ {
			st.walk(v.Element(i), depth+1)
		}
	case jsontree.TypeObject:
		for i := 0; i < v.ObjectSize(); i++ {
			st.walk(v.ObjectValue(i), depth+1)
		}
	}
}

func newStatsCommand(s settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file|-]",
		Short: "Parse a document and summarise its shape.",
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

			st := collectStats(&v)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size:      %s\n", humanize.Bytes(uint64(len(data))))
			fmt.Fprintf(out, "max depth: %d\n", st.maxDepth)
			for t := jsontree.TypeNull; t <= jsontree.TypeObject; t++ {
				fmt.Fprintf(out, "%-10s %s\n", t.String()+":", humanize.Comma(int64(st.counts[t])))
			}
			return nil
		},
	}
}
