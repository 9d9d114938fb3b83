package database

import (
	"context"
	"fmt"
	"log"

	"job-marketplace-api/ent/migrate"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Migrate brings the database schema in line with the ent schema in ent/schema.
// The repositories keep querying through the pgx pool; ent only owns the DDL.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	drv := entsql.OpenDB(dialect.Postgres, stdlib.OpenDBFromPool(pool))

	if err := migrate.NewSchema(drv).Create(ctx, migrate.WithForeignKeys(true)); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	log.Println("Database schema is up to date")
	return nil
}
