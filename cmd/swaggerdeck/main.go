package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cberube/swaggerdeck/internal/config"
	"github.com/cberube/swaggerdeck/internal/executor"
	"github.com/cberube/swaggerdeck/internal/history"
	"github.com/cberube/swaggerdeck/internal/tui"
)

var (
	version = "0.1.0"
)

var (
	flagSwaggerURL string
	flagBaseURL    string
)

var rootCmd = &cobra.Command{
	Use:   "swaggerdeck",
	Short: "Interactive Swagger/OpenAPI endpoint explorer",
	Long: `swaggerdeck is an interactive terminal client for Swagger/OpenAPI v2 APIs.

It fetches an API description from a URL, lets you browse and filter the
endpoints, fill in path and query parameters, author JSON bodies, and execute
requests with an optional bearer token.

Examples:
  swaggerdeck                                          # Use the saved URLs
  swaggerdeck --url https://petstore.swagger.io/v2/swagger.json \
              --base-url https://petstore.swagger.io/v2`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(version, flagSwaggerURL, flagBaseURL)
	},
}

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		manager, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer manager.Close()

		if flagHistoryClear {
			if err := manager.Clear(); err != nil {
				return err
			}
			fmt.Println("History cleared")
			return nil
		}

		entries, err := manager.List(flagHistoryLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No requests recorded yet")
			return nil
		}

		for _, e := range entries {
			status := fmt.Sprintf("%d", e.Status)
			if e.IsError {
				status = "ERR"
			}
			fmt.Printf("%s  %-7s %-4s %-8s %s\n",
				e.ExecutedAt.Format("2006-01-02 15:04:05"),
				e.Method,
				status,
				executor.FormatDuration(e.DurationMs),
				e.URL,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagSwaggerURL, "url", "", "Swagger/OpenAPI spec URL")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Base URL requests are issued against")

	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 100, "Maximum number of entries to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all stored entries")

	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
