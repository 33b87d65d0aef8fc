package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/leetkeeper/internal/client/api"
	"github.com/iudanet/leetkeeper/internal/client/cli"
	"github.com/iudanet/leetkeeper/internal/client/data"
	"github.com/iudanet/leetkeeper/internal/client/iocli"
	"github.com/iudanet/leetkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/leetkeeper/internal/client/tui"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "leetkeeper.db", "Path to local database")
	datasetURL := flag.String("dataset-url", defaultDatasetURL(), "Problem rating dataset URL")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы
	apiClient := api.NewClient(*datasetURL, logger)
	dataService := data.NewService(apiClient, boltStorage, boltStorage, logger)
	io := iocli.NewStdio()
	c := cli.New(dataService, io, *dbPath)

	// Без команды в терминале запускаем интерактивную таблицу
	args := flag.Args()
	if len(args) == 0 {
		if !io.IsTerminal() {
			c.PrintUsage()
			os.Exit(1)
		}
		if err := tui.Run(ctx, dataService); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Выполняем команду
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultDatasetURL позволяет переопределить фид через окружение
func defaultDatasetURL() string {
	if url := os.Getenv("LEETKEEPER_DATASET_URL"); url != "" {
		return url
	}
	return api.DefaultDatasetURL
}

func printVersion() {
	fmt.Printf("leetkeeper\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
