package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/internal/fileio"
	"github.com/tabsynth/tabsynth/internal/server"
	"github.com/tabsynth/tabsynth/pkg/config"
	"github.com/tabsynth/tabsynth/pkg/engine"
	"github.com/tabsynth/tabsynth/pkg/generator"
	"github.com/tabsynth/tabsynth/pkg/json"
	"github.com/tabsynth/tabsynth/pkg/logger"
	"github.com/tabsynth/tabsynth/pkg/profile"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

var version = "1.0.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "tabsynth",
		Short: "tabsynth - Synthetic tabular data generation service",
		Long: `tabsynth generates realistic synthetic tabular datasets from free-text
requests, structural patterns learned from uploaded samples, or explicit
column schemas. It can run as a one-shot CLI or as an HTTP service.`,
	}

	var configFile string
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file (optional)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tabsynth v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered dataset generators",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available generators:")
			for _, it := range generator.List() {
				fmt.Printf("  - %s\n", it)
			}
		},
	})

	// One-shot generation from the command line
	var request, sampleFile, outputDir string
	var records int
	var seed int64

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic dataset from a free-text request",
		Long: `Generate a synthetic dataset and write it as a CSV file.

The request text is interpreted for a dataset type and record count. When a
sample file is given, its structural patterns are learned and the output
mimics the sample's columns instead of a built-in template.

Example:
  tabsynth generate --request "Generate 500 customer records"
  tabsynth generate --request "more like this" --sample customers.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(configFile, request, sampleFile, outputDir, records, seed)
		},
	}
	generateCmd.Flags().StringVarP(&request, "request", "r", "", "Free-text generation request (required)")
	generateCmd.Flags().StringVarP(&sampleFile, "sample", "s", "", "Path to a CSV sample whose patterns the output should follow")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the generated file (defaults to configured output dir)")
	generateCmd.Flags().IntVarP(&records, "records", "n", 0, "Number of records to generate (overrides the count in the request text)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output (0 means time-seeded)")
	_ = generateCmd.MarkFlagRequired("request")
	root.AddCommand(generateCmd)

	// Profile inspection
	profileCmd := &cobra.Command{
		Use:   "profile <sample.csv>",
		Short: "Learn and print the pattern profile of a CSV sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(args[0])
		},
	}
	root.AddCommand(profileCmd)

	// HTTP service
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP generation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configFile)
		},
	}
	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig builds the service configuration, optionally layered from a
// YAML file with ${ENV} substitution.
func loadConfig(configFile string) (*config.ServiceConfig, error) {
	cfg := config.NewServiceConfig()
	if configFile != "" {
		if err := config.Load(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configFile, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func initLogger(cfg *config.ServiceConfig) error {
	encoding := "json"
	if cfg.Observability.Development {
		encoding = "console"
	}
	return logger.Init(logger.Config{
		Level:       cfg.Observability.LogLevel,
		Development: cfg.Observability.Development,
		Encoding:    encoding,
	})
}

func runGenerate(configFile, request, sampleFile, outputDir string, records int, seed int64) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	req := engine.Request{
		Text:      request,
		CountHint: records,
		Seed:      seed,
	}

	if sampleFile != "" {
		table, err := readSample(sampleFile)
		if err != nil {
			return err
		}
		p, err := profile.Build(table)
		if err != nil {
			return fmt.Errorf("failed to learn sample patterns: %w", err)
		}
		req.Profile = p
	}

	eng := engine.New(cfg.Generation, logger.Get(), engine.WithMetrics(cfg.Observability.EnableMetrics))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Generation.Timeout)
	defer cancel()

	table, resolved, err := eng.Generate(ctx, req)
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.Storage.OutputDir
	}
	name, err := fileio.WriteFile(dir, table, cfg.Storage.Compression)
	if err != nil {
		return err
	}

	logger.Get().Info("dataset generated",
		zap.String("intent", string(resolved.Type)),
		zap.Int("records", table.NumRows()),
		zap.String("file", name))
	fmt.Printf("Generated %d %s records: %s\n", table.NumRows(), resolved.Type, name)
	return nil
}

func runProfile(sampleFile string) error {
	table, err := readSample(sampleFile)
	if err != nil {
		return err
	}

	p, err := profile.Build(table)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render profile: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runServe(configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get().With(zap.String("component", "tabsynth-server"))
	eng := engine.New(cfg.Generation, log, engine.WithMetrics(cfg.Observability.EnableMetrics))
	srv := server.New(cfg, eng, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting service",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr()),
		zap.Bool("metrics", cfg.Observability.EnableMetrics))

	return srv.ListenAndServe(ctx)
}

func readSample(path string) (*sample.Table, error) {
	file, err := os.Open(path) //nolint:gosec // G304: operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file %s: %w", path, err)
	}
	defer file.Close()
	return fileio.ReadCSV(file)
}
