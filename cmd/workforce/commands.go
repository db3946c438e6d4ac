package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spektr-org/workforce/config"
	"github.com/spektr-org/workforce/logger"
	"github.com/spektr-org/workforce/report"
	"github.com/spektr-org/workforce/roster"
)

// ============================================================================
// COMMANDS — workforce, workforce catalog, workforce version
// ============================================================================

// env is everything the commands touch outside the process.
type env struct {
	fs      afero.Fs
	stderr  io.Writer
	workDir string // empty means the process working directory
}

func newRootCommand(e env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workforce",
		Short: "Run the employee roster report",
		Long: `Loads the employee roster and prints the result of every query in the
report catalog, in catalog order.

The roster is a JSON array of employee objects, or a CSV file with a
header row when the path ends in .csv.`,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, e)
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", config.DefaultDataFile, "roster file (.json or .csv)")
	flags.String("format", string(report.FormatText), "output format: text, table, json")
	flags.Bool("no-color", false, "disable colored headers")
	flags.String("log-level", "WARN", "log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-format", "text", "log format: text, json")
	flags.String("config", "", "config file (default .workforce.yaml in ., $HOME or $HOME/.config/workforce)")

	cmd.SetErr(e.stderr)
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func runReport(cmd *cobra.Command, e env) error {
	cfg, err := config.Load(config.Options{
		Fs:      e.fs,
		Flags:   cmd.Flags(),
		WorkDir: e.workDir,
	})
	if err != nil {
		return err
	}

	logCfg := cfg.Logger()
	logCfg.Writer = e.stderr
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		log.Debug("using config file", "path", cfg.ConfigFile)
	}

	employees, err := roster.Load(e.fs, cfg.DataFile)
	if err != nil {
		return err
	}
	log.Info("loaded roster", "path", cfg.DataFile, "records", len(employees))

	return report.Run(cmd.OutOrStdout(), employees, report.Catalog(),
		report.WithFormat(cfg.Format),
		report.WithColor(!cfg.NoColor),
		report.WithLogger(log),
	)
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the queries of the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, q := range report.Catalog() {
				if _, err := fmt.Fprintf(out, "%2d  %s\n", q.ID, q.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "workforce %s (commit: %s)\n", Version, Commit)
		},
	}
}
