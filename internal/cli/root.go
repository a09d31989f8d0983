// Package cli provides the command-line interface for astddl.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/astddl"
	"github.com/zoobzio/astddl/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     *config.Config
		logger  *slog.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "astddl",
		Short: "Render dialect-correct DDL statements",
		Long: `astddl renders DROP TABLE statements for a target database dialect.

Dialects without native IF EXISTS support receive an equivalent
error-tolerant wrapper block.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger = NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./astddl.yaml)")
	rootCmd.PersistentFlags().StringP("dialect", "d", "", "Target dialect (see 'astddl dialects')")
	rootCmd.PersistentFlags().String("keywords", "", "Keyword case (upper|lower)")
	rootCmd.PersistentFlags().String("names", "", "Identifier style (quoted|as_is|upper|lower)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Render wrapper blocks across multiple lines")
	rootCmd.PersistentFlags().Int("indent", 0, "Indent width used with --pretty")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(astddl.Dialects()))
		for _, d := range astddl.Dialects() {
			names = append(names, d.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newDropCommand(func() (*config.Config, *slog.Logger) { return cfg, logger }))
	rootCmd.AddCommand(newDialectsCommand())

	return rootCmd
}

func newDropCommand(state func() (*config.Config, *slog.Logger)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop TABLE...",
		Short: "Render DROP TABLE statements",
		Example: `  astddl drop --dialect postgres --if-exists --cascade users orders
  astddl drop -d oracle --if-exists --schema HR EMPLOYEES`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := state()
			return runDrop(cmd.OutOrStdout(), cfg, logger, args)
		},
	}

	cmd.Flags().Bool("if-exists", false, "Do not fail when the table is missing")
	cmd.Flags().Bool("cascade", false, "Drop dependent objects")
	cmd.Flags().String("schema", "", "Schema qualifying every table")

	return cmd
}

func runDrop(w io.Writer, cfg *config.Config, logger *slog.Logger, tables []string) error {
	d, err := cfg.ResolveDialect()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, astddl.WithLogger(logger))

	stmts := make([]*astddl.DropTableStatement, 0, len(tables))
	for _, name := range tables {
		var schema []string
		if cfg.Schema != "" {
			schema = append(schema, cfg.Schema)
		}
		t, err := astddl.TryT(name, schema...)
		if err != nil {
			return err
		}

		b := astddl.DropTable(t)
		if cfg.IfExists {
			b = astddl.DropTableIfExists(t)
		}
		if cfg.Cascade {
			b.Cascade()
		}
		stmt, err := b.Build()
		if err != nil {
			return err
		}
		stmts = append(stmts, stmt)
	}

	script, err := astddl.RenderScript(stmts, astddl.NewRenderer(d, opts...))
	if err != nil {
		return err
	}

	for _, state := range script.IgnoreSQLStates() {
		logger.Info("treat SQLSTATE as success when executing", "dialect", d.String(), "sqlstate", state)
	}

	_, err = io.WriteString(w, script.SQL)
	return err
}

func newDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeDialects(cmd.OutOrStdout())
		},
	}
}

func writeDialects(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DIALECT\tFAMILY\tIF EXISTS\tCASCADE")
	for _, d := range astddl.Dialects() {
		caps := astddl.CapabilitiesFor(d.Family())
		ifExists := "native"
		if !caps.ConditionalDrop {
			ifExists = "emulated"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d, d.Family(), ifExists, yesNo(caps.DropCascade))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
