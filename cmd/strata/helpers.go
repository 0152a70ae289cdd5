package main

import (
	"context"
	"fmt"

	"github.com/KayanRoberto/strata-cashflow/internal/cli"
	"github.com/KayanRoberto/strata-cashflow/internal/common"
	"github.com/KayanRoberto/strata-cashflow/internal/config"
	"github.com/KayanRoberto/strata-cashflow/internal/gamification"
	"github.com/KayanRoberto/strata-cashflow/internal/ledger"
	"github.com/KayanRoberto/strata-cashflow/internal/service"
	"github.com/KayanRoberto/strata-cashflow/internal/storage"
	"github.com/spf13/viper"
)

// initBlobStore opens the SQLite blob store at the configured path and
// runs migrations.
func initBlobStore(ctx context.Context) (service.BlobStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open the database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initLedger opens the blob store and loads the ledger on top of it.
// The caller owns closing the returned blob store.
func initLedger(ctx context.Context) (*ledger.Store, service.BlobStore, error) {
	blobs, err := initBlobStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	store, err := ledger.NewStore(ctx, blobs)
	if err != nil {
		_ = blobs.Close()
		return nil, nil, err
	}

	return store, blobs, nil
}

// refreshGamification re-evaluates achievements after a ledger change
// and prints any newly unlocked ones.
func refreshGamification(ctx context.Context, blobs service.BlobStore, store *ledger.Store) error {
	engine, err := gamification.NewEngine(ctx, blobs)
	if err != nil {
		return err
	}

	unlocked, err := engine.Evaluate(ctx, store.Transactions(), store.Goals())
	if err != nil {
		return err
	}

	for _, ach := range unlocked {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Conquista desbloqueada: %s (%s)", ach.Icon, ach.Title, ach.Description)))
	}
	return nil
}
