package main

import (
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/logging"
	"taskboard/internal/update"
)

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Terminal task board over a remote task store",
	Long: `taskboard renders your tasks as a priority board (high, medium, low,
completed), synced against a remote task API. Tasks can be added,
searched, reprioritized by grabbing and dropping between columns,
completed, and cleared, with a daily summary panel on demand.`,
	RunE: runBoard,
}

func init() {
	rootCmd.Flags().String("api-url", "", "base URL of the task API (default $TASKBOARD_API_URL or http://localhost:8080)")
	rootCmd.Flags().String("log-dir", "", "directory for log files (default $TASKBOARD_LOG_DIR or stderr)")
	rootCmd.Flags().Int("timeout", 0, "request timeout in seconds (default $TASKBOARD_REQUEST_TIMEOUT or 15)")
	rootCmd.Flags().Bool("no-alt-screen", false, "render inline instead of taking over the terminal")
}

func runBoard(cmd *cobra.Command, _ []string) error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := cmd.Flags().GetString("log-dir"); v != "" {
		cfg.LogDir = v
	}
	if v, _ := cmd.Flags().GetInt("timeout"); v > 0 {
		cfg.RequestTimeout = v
	}
	if v, _ := cmd.Flags().GetBool("no-alt-screen"); v {
		cfg.AltScreen = false
	}

	if err := logging.Init(cfg.LogDir); err != nil {
		return err
	}

	client := api.NewClientWithHTTP(cfg.APIBaseURL, &http.Client{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(update.NewModel(client), opts...)
	_, err := program.Run()
	return err
}
