package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rhyrak/krsplan/internal/csvio"
	"github.com/rhyrak/krsplan/internal/parser"
	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/pkg/model"
	"github.com/spf13/cobra"
)

var (
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "krsplan",
	Short: "Plan a semester from a pasted course catalog",
	Long: `krsplan reads course catalog text copied from the academic portal,
finds clashing classes and narrows candidate schedules down with elimination rules.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelError
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log parser and conflict warnings")
}

func loadConfig(cmd *cobra.Command) (*scheduler.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	return scheduler.LoadConfiguration(path)
}

// loadCatalog reads and parses the catalog text file at path.
func loadCatalog(cmd *cobra.Command, path string) (*scheduler.Configuration, *parser.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	res, err := csvio.LoadCatalog(path, cfg.NewParser())
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}

// selectClasses resolves class ids against the catalog.
func selectClasses(catalog *model.Catalog, classIDs []string) ([]model.Selection, error) {
	var out []model.Selection
	for _, id := range classIDs {
		s, c := catalog.Class(id)
		if c == nil {
			return nil, fmt.Errorf("class %q not found in catalog", id)
		}
		out = append(out, model.Selection{Subject: s, Class: c})
	}
	return out, nil
}
