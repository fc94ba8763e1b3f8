package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"crowdfund/db/migrations"
)

// Migrate applies all up migrations embedded in the migrations package to
// the database at addr, up to migrations.Version. A database left dirty by
// an interrupted migration is reported instead of being touched.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	drv, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", src, "postgres", drv)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
