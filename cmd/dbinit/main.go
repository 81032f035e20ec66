// Command dbinit bootstraps the database from a SQL script (DB_SCHEMA,
// default db_content.txt) and prints the resulting tables with their row
// counts.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/reagent-labs/reagent/pkg/config"
	"github.com/reagent-labs/reagent/pkg/sqldb"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	source, err := cfg.DatabaseSource()
	if err != nil {
		logger.Fatal("database configuration missing", zap.Error(err))
	}
	store, err := sqldb.Open(source)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer store.Close()

	executed, err := store.ExecScript(ctx, cfg.SchemaFile)
	if err != nil {
		logger.Fatal("schema setup failed",
			zap.String("schema", cfg.SchemaFile),
			zap.Int("executed", executed),
			zap.Error(err),
		)
	}
	fmt.Printf("Executed %d statement(s) from %s.\n", executed, cfg.SchemaFile)

	tables, err := store.Tables(ctx)
	if err != nil {
		logger.Fatal("table listing failed", zap.Error(err))
	}
	for _, table := range tables {
		count, err := store.CountRows(ctx, table)
		if err != nil {
			logger.Fatal("row count failed", zap.String("table", table), zap.Error(err))
		}
		fmt.Printf("%s: %d row(s)\n", table, count)
	}
}
