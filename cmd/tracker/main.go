package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/MendeIT/oop-fitness-tracker/internal/config"
	"github.com/MendeIT/oop-fitness-tracker/internal/processor"
	"github.com/MendeIT/oop-fitness-tracker/internal/sensor"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	inputPath := cfg.InputPath

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Compute workout summary reports from raw sensor packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, inputPath)
		},
	}
	root.Flags().StringVar(&inputPath, "input", cfg.InputPath,
		"YAML file with sensor packages (built-in sample batch when empty)")
	return root
}

func run(ctx context.Context, cfg config.Config, inputPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: cfg.MetricsAddress, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server error: %v", err)
			}
		}()
		defer server.Close()
	}

	packages := sensor.SamplePackages()
	if inputPath != "" {
		loaded, err := sensor.Load(inputPath)
		if err != nil {
			return err
		}
		packages = loaded
	}

	return processor.New(os.Stdout).Run(ctx, packages)
}
