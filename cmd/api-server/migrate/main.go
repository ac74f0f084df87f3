package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/config"
	"github.com/chainsafe/helisync/pkg/migrations/apidb"
	"github.com/chainsafe/helisync/pkg/pgutil"
	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mghelper.Usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*cfgPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		if errors.Is(err, mghelper.ErrNoCommand) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfgPath string, args []string) error {
	cfg, err := config.LoadAPIServer(cfgPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	logger.Info("running helisync migrations", zap.String("database", cfg.Database.Database))
	return mghelper.RunMigrations(ctx, migrate.NewMigrator(db, apidb.Migrations), logger, args...)
}
