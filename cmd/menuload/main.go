// Package main provides the CLI entry point for menuload.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olkkari/menuload/internal/config"
	"github.com/olkkari/menuload/internal/logger"
	"github.com/olkkari/menuload/pkg/menuload"
	"github.com/olkkari/menuload/pkg/menuload/models"
	"github.com/olkkari/menuload/pkg/menuload/output"
	"github.com/olkkari/menuload/pkg/menuload/remote"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "menuload",
		Short: "Move the Olkkari menu workbook into the menu tables",
		Long: `menuload extracts the food menu and cocktail sheets of the Olkkari
workbook into JSON files, then loads those files into the food_menu and
cocktails tables. Run "extract" first, then "load".`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: info)")

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract the menu and cocktail sheets to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}
	addOutputFlags(extractCmd)

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Insert the extracted JSON into the menu tables",
		Long: `load transforms the extracted records and inserts them into food_menu and
cocktails with one bulk insert per table, then prints the row count of each
table. Inserts are plain inserts: running load twice duplicates every row.`,
		Args: cobra.NoArgs,
		RunE: runLoad,
	}
	addOutputFlags(loadCmd)
	loadCmd.Flags().String("backend", "", "Backend: postgrest, postgres, sqlite (default: postgrest)")
	loadCmd.Flags().String("supabase-url", "", "Project URL of the hosted API")
	loadCmd.Flags().String("supabase-key", "", "Access key of the hosted API")
	loadCmd.Flags().String("database-url", "", "Postgres connection string for the postgres backend")
	loadCmd.Flags().String("sqlite-path", "", "Database file for the sqlite backend (default: menu.db)")
	loadCmd.Flags().Bool("sqlite-migrate", false, "Create the menu tables in the sqlite database first")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSheets,
	}

	rootCmd.AddCommand(extractCmd, loadCmd, sheetsCmd)
	return rootCmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("menu-json", "", "Food menu JSON file (default: "+menuload.DefaultMenuOutput+")")
	cmd.Flags().String("cocktail-json", "", "Cocktail JSON file (default: "+menuload.DefaultCocktailOutput+")")
}

func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Workbook = args[0]
	}
	return cfg, nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sheets, err := menuload.ListSheets(cfg.Workbook)
	if err != nil {
		return err
	}
	for _, name := range sheets {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	out := cmd.OutOrStdout()

	sheets, err := menuload.ListSheets(cfg.Workbook)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Workbook).Msg("cannot open workbook")
		return err
	}
	fmt.Fprintf(out, "Available sheets: %q\n", sheets)

	opts := cfg.ExtractOptions()
	exports, err := menuload.Extract(cfg.Workbook, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	for _, exp := range exports {
		title := titleFor(opts, exp.SheetName)
		fmt.Fprintf(out, "\n%s Headers: %q\n", title, exp.Headers)
		fmt.Fprintf(out, "Data range: %s\n", exp.Range)
		fmt.Fprintf(out, "Extracted %d %s items\n", len(exp.Records), strings.ToLower(title))

		if err := menuload.WriteExports([]models.SheetExport{exp}); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(out, "Saved to %s\n", exp.Output)
		log.Debug().Str("sheet", exp.SheetName).Int("records", len(exp.Records)).Str("path", exp.Output).Msg("sheet written")
	}

	for _, spec := range opts.Sheets {
		printSample(out, capitalize(spec.Label), exports, spec.Name)
	}
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingKey) {
			fmt.Fprintln(cmd.ErrOrStderr(), "ERROR: Please set MENULOAD_SUPABASE_KEY or pass --supabase-key")
			fmt.Fprintln(cmd.ErrOrStderr(), "You can find the key in your Supabase project settings > API")
		}
		return err
	}

	log := logger.New(cfg.LogLevel)
	ctx := logger.WithContext(cmd.Context(), log)

	backend, err := remote.Open(ctx, cfg.RemoteSettings())
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Backend).Msg("cannot open backend")
		return err
	}
	defer backend.Close()

	loader := &menuload.Loader{
		Backend: backend,
		Out:     cmd.OutOrStdout(),
		Log:     log,
	}
	summary, err := loader.Load(ctx, menuload.DefaultJobs(cfg.MenuJSON, cfg.CocktailJSON))
	if err != nil {
		return err
	}
	if summary.Failed() {
		log.Warn().Msg("load finished with errors")
	}
	return nil
}

func titleFor(opts menuload.Options, sheetName string) string {
	for _, spec := range opts.Sheets {
		if spec.Name == sheetName {
			return capitalize(spec.Label)
		}
	}
	return sheetName
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func printSample(out io.Writer, title string, exports []models.SheetExport, sheetName string) {
	fmt.Fprintf(out, "\n%s\nSample %s Item:\n", strings.Repeat("=", 80), title)
	for _, exp := range exports {
		if exp.SheetName != sheetName || len(exp.Records) == 0 {
			continue
		}
		data, err := output.Marshal(exp.Records[0])
		if err != nil {
			continue
		}
		fmt.Fprintln(out, string(data))
	}
}
