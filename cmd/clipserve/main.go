package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipserve/internal/app/bootstrap"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "clipserve",
	Short: "Clip extraction and serving for remotely hosted videos",
	Long: `clipserve cuts bounded time-range clips out of remotely hosted videos
without downloading the full asset, stores them on local disk, and serves
them over HTTP for short-lived pull-based retrieval.

Processes:
  api     - HTTP API: cut, serve, cleanup, transcript lookup
  worker  - background sweep of expired clip artifacts`,
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the HTTP API process",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.BuildAPI()
		if err != nil {
			return fmt.Errorf("bootstrap api: %w", err)
		}
		return app.Run(cmd.Context())
	},
}

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the artifact sweeper worker process",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.BuildWorker()
		if err != nil {
			return fmt.Errorf("bootstrap worker: %w", err)
		}
		return app.Run(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clipserve version %s\n", Version)
	},
}

func main() {
	rootCmd.AddCommand(apiCmd, workerCmd, versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
