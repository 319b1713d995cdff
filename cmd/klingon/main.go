// Command klingon decomposes Klingon words, parses entry descriptors and
// queries a SQLite dictionary from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tlhingan-hol/klingon"
	"github.com/tlhingan-hol/klingon/store/sqlite"
)

// app carries the global flags and the logger built from them.
type app struct {
	verbose bool
	dbPath  string
	logger  *zap.Logger
}

// defaults holds the flag defaults read from the environment.
type defaults struct {
	// DBPath is the SQLite dictionary file.
	DBPath string `env:"KLINGON_DB_PATH" envDefault:"klingon.db"`
}

func loadDefaults() (defaults, error) {
	var d defaults
	if err := env.Parse(&d); err != nil {
		return defaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}

func newRootCmd(d defaults) *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "klingon",
		Short: "Klingon word analysis and dictionary lookup",
		Long: `klingon splits inflected Klingon words into prefix, stem, suffixes
and rovers, and looks the possible stems up in a dictionary.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", d.DBPath, "path to the SQLite dictionary")

	rootCmd.AddCommand(a.decomposeCmd(), a.parseCmd(), a.lookupCmd(), a.importCmd())
	return rootCmd
}

func (a *app) decomposeCmd() *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "decompose [word]",
		Short: "List every prefix/stem/suffix analysis of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := klingon.NormalizeQuery(args[0])
			var (
				cands []klingon.WordCandidate
				err   error
			)
			if class == "" {
				cands, err = klingon.DecomposeAll(word)
			} else {
				c, perr := klingon.ParseWordClass(class)
				if perr != nil {
					return perr
				}
				cands, err = klingon.Decompose(word, c)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cands {
				fmt.Fprintf(out, "%-40s %s\n", c.String(), c.FilterString())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&class, "class", "c", "", "analyse only as n(oun) or v(erb)")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [name:pos:attrs]",
		Short: "Show how an entry descriptor is read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, diags := klingon.ParseQuery(klingon.NormalizeQuery(args[0]))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:           %s\n", e.FormattedEntryName())
			fmt.Fprintf(out, "part of speech: %s (%s)\n", e.PartOfSpeech, e.SpecificPartOfSpeech())
			if e.IsVerb() {
				fmt.Fprintf(out, "transitivity:   %s\n", e.Transitivity.Description())
			}
			if e.IsSentence() {
				fmt.Fprintf(out, "sentence type:  %s\n", e.SentenceType)
			}
			if e.Homophone != klingon.HomophoneUnspecified {
				fmt.Fprintf(out, "homophone:      %d\n", e.Homophone)
			}
			if e.SourceURL != "" {
				fmt.Fprintf(out, "source:         %s\n", e.SourceURL)
			}
			for _, d := range diags {
				a.logger.Warn("descriptor diagnostic", zap.Error(d))
				fmt.Fprintf(out, "warning:        %s\n", d.Error())
			}
			return nil
		},
	}
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [query]",
		Short: "Find dictionary entries for a word or name:pos query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sqlite.Open(a.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			dict := klingon.New(store, klingon.WithLogger(a.logger))
			results, err := dict.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Load a YAML or line-format dictionary file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := klingon.LoadRecords(args[0])
			if err != nil {
				return err
			}
			store, err := sqlite.Open(a.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(cmd.Context(), records); err != nil {
				return err
			}
			a.logger.Info("imported", zap.String("file", args[0]), zap.Int("entries", len(records)))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries into %s\n", len(records), a.dbPath)
			return nil
		},
	}
}

func printResults(out io.Writer, results []klingon.Result) {
	if len(results) == 0 {
		fmt.Fprintln(out, "no entries found")
		return
	}
	for _, r := range results {
		indent := ""
		if r.Entry.IsIndented() {
			indent = "    "
		}
		fmt.Fprintf(out, "%s%s%s: %s\n", indent, r.Entry.FormattedEntryName(), r.Entry.BracketedPartOfSpeech(),
			klingon.PlainDefinition(r.Record.Definition))
		if r.Analysis != nil && !r.Analysis.IsBare() {
			fmt.Fprintf(out, "%s    = %s\n", indent, r.Analysis.Display())
		}
	}
}

func main() {
	d, err := loadDefaults()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(d).Execute(); err != nil {
		os.Exit(1)
	}
}
