// Command uidiff compares two UI hierarchy snapshots and reports
// non-cosmetic differences.
//
// Usage:
//
//	uidiff base.xml input.xml                 # compare two snapshots
//	uidiff -config uidiff.yaml base input     # custom sensitivity
//	uidiff -store reports.db base input       # also persist the report
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/uidiff/hierdiff"
	"github.com/hazyhaar/uidiff/report"
	"github.com/hazyhaar/uidiff/reportstore"
)

func main() {
	configPath := flag.String("config", "", "path to uidiff.yaml config file")
	storePath := flag.String("store", "", "append the report to an SQLite database")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: uidiff [flags] base.xml input.xml")
		return
	}

	if err := run(context.Background(), logger, *configPath, *storePath, flag.Arg(0), flag.Arg(1)); err != nil {
		logger.Error("uidiff: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, storePath, basePath, inputPath string) error {
	cfg := hierdiff.DefaultConfig()
	if configPath != "" {
		loaded, err := hierdiff.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	engine := hierdiff.New(cfg, logger)
	rep, err := engine.CompareFiles(basePath, inputPath)
	if err != nil {
		return err
	}

	if len(rep.Differences) == 0 {
		fmt.Println("no significant differences found")
	} else {
		data, err := report.MarshalDifferences(rep.Differences)
		if err != nil {
			return fmt.Errorf("marshal differences: %w", err)
		}
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
	}

	fmt.Printf("Difference Score: %.4f (0=identical, 1=completely different)\n", rep.Score)
	fmt.Printf("Total Differences: %d\n", rep.TotalDiffs)

	if storePath != "" {
		store, err := reportstore.Open(storePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Insert(ctx, rep); err != nil {
			return err
		}
		logger.Info("uidiff: report stored", "id", rep.ID, "db", storePath)
	}
	return nil
}
