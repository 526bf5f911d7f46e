package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stayhub/backend/internal/infrastructure/logger"
	"github.com/stayhub/backend/internal/infrastructure/migration"
)

const usage = `usage: migrate [flags] <command>

commands:
  up             apply all pending migrations
  down           roll back the last migration
  version        print the current migration version
  force <n>      set the version without running migrations
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	migrator, err := migration.New(cfg.Database.MigrateURL(), *source)
	if err != nil {
		log.Fatal("failed to prepare migrator", zap.Error(err))
	}
	defer func() { _ = migrator.Close() }()

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		log.Info("migrations applied")
	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("rollback failed", zap.Error(err))
		}
		log.Info("rolled back one migration")
	case "version":
		v, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("failed to read version", zap.Error(err))
		}
		log.Info("migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
	case "force":
		if flag.NArg() < 2 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		v, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatal("invalid version", zap.String("arg", flag.Arg(1)))
		}
		if err := migrator.Force(v); err != nil {
			log.Fatal("force failed", zap.Error(err))
		}
		log.Info("version forced", zap.Int("version", v))
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}
