package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/config"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/plan"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/server"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/service"
)

// Set with -ldflags at build time.
var (
	version   = "dev"
	buildDate = "unknown"
)

var (
	cliFilters filters
	cfgFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "achrecon",
	Short: "Convert ACH reconciliation feeds to spreadsheets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
	SilenceUsage: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Convert feed files (a file, a directory or a glob) to xlsx or csv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		processor := service.NewProcessor(cfg, logger).WithFilter(cliFilters.toFilterFunc())

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		var results []*service.Result
		failed := 0
		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				failed++
				continue
			}

			if fileInfo.IsDir() {
				res, err := processor.ProcessDirectory(match)
				if err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
					failed++
				}
				results = append(results, res...)
				continue
			}

			res, err := processor.ProcessFile(match, "", "")
			if err != nil {
				logger.Warn("failed to process file", "error", err, "file", match)
				failed++
				continue
			}
			results = append(results, res)
		}

		for _, res := range results {
			res.Summary.Render(cmd.OutOrStdout(), fmt.Sprintf("%s -> %s", res.Input, res.Output))
		}
		if len(results) == 0 && failed > 0 {
			return fmt.Errorf("no feeds converted")
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Pretty-print the parsed header and detail records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		feed, err := service.NewProcessor(cfg, logger).Load(args[0])
		if err != nil {
			return err
		}

		printer := pp.New()
		printer.SetOutput(cmd.OutOrStdout())
		header := make(map[string]string, feed.Header.Len())
		for _, f := range feed.Header.Fields() {
			header[f.Key] = f.Value
		}
		printer.Println(header)
		for i, r := range feed.Details {
			fmt.Fprintf(cmd.OutOrStdout(), "record %d\n", i+1)
			printer.Println(r.Map())
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <plan_file>",
	Short: "Convert every feed listed in a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Plan %s\n", args[0])
		p.Print(cmd.OutOrStdout())

		processor := service.NewProcessor(cfg, logger).WithFilter(cliFilters.toFilterFunc())
		failed := 0
		for _, feed := range p.Feeds {
			res, err := processor.ProcessFile(feed.File, feed.Output, feed.Format)
			if err != nil {
				logger.Error("failed to convert feed", "file", feed.File, "error", err)
				failed++
				continue
			}
			res.Summary.Render(cmd.OutOrStdout(), fmt.Sprintf("%s -> %s", res.Input, res.Output))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d feed(s) failed", failed, len(p.Feeds))
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP conversion API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		srv := server.New(cfg, logger)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-quit
			logger.Info("shutting down")
			if err := srv.Shutdown(); err != nil {
				logger.Error("shutdown failed", "error", err)
			}
		}()

		return srv.Start(cfg.Server.Addr)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "achrecon %s (built %s, %s)\n", version, buildDate, runtime.Version())
	},
}

// setup loads configuration (config file + env + flag overrides) and builds
// the logger.
func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: true,
		Prefix:          "achrecon",
		Level:           level,
	})
	return cfg, logger, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./achrecon.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	// Output flags
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory (default: next to the input)")
	rootCmd.PersistentFlags().String("output-name", "", "Output name pattern using {name}, {timestamp}, {uuid}")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (xlsx or csv)")
	rootCmd.PersistentFlags().String("header-sheet", "", "Header sheet name")
	rootCmd.PersistentFlags().String("detail-sheet", "", "Detail sheet name")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.batch, "batch", "", "Only rows whose batch contains this value")
	rootCmd.PersistentFlags().StringVar(&cliFilters.code, "code", "", "Only rows with this record code")
	rootCmd.PersistentFlags().StringVar(&cliFilters.transactionCode, "transaction-code", "", "Only rows with this transaction code")

	serveCmd.Flags().String("addr", "", "Listen address (default 0.0.0.0:3000)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
