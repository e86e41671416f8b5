package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cybergodev/jsontree"
)

const envPrefix = "JSONTREE"

// settings binds flags and JSONTREE_* environment variables.
type settings struct {
	v *viper.Viper
}

func (s settings) parser() *jsontree.Parser {
	cfg := jsontree.DefaultConfig()
	cfg.MaxNestingDepth = s.v.GetInt("max-depth")
	cfg.MaxInputSize = s.maxSize()
	cfg.AllowTrailingContent = s.v.GetBool("allow-trailing")

	p := jsontree.NewParser(cfg)
	level := slog.LevelError + 1 // parse failures are reported on stdout
	if s.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	p.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return p
}

func (s settings) maxSize() int64 {
	return s.v.GetInt64("max-size")
}

func newRootCommand() *cobra.Command {
	s := settings{v: viper.New()}

	root := &cobra.Command{
		Use:           "jsontree",
		Short:         "Parse JSON documents into value trees.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `jsontree check a.json b.json.gz
cat doc.json | jsontree stringify -
JSONTREE_MAX_DEPTH=32 jsontree stats doc.json`,
	}

	flags := root.PersistentFlags()
	flags.Int("max-depth", jsontree.DefaultMaxNestingDepth, "maximum nesting depth of arrays and objects")
	flags.Int64("max-size", jsontree.DefaultMaxInputSize, "maximum input size in bytes, 0 for unlimited")
	flags.Bool("allow-trailing", false, "accept content after the root value")
	flags.BoolP("verbose", "v", false, "log every parse at debug level")

	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	if err := s.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(newCheckCommand(s), newStringifyCommand(s), newStatsCommand(s))
	return root
}
