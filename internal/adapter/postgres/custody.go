package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Custody implements port.Custody over the custody_accounts table. Each
// transfer runs in its own read committed transaction that locks the paying
// account with FOR UPDATE; the credit is a single upsert. Transactions
// aborted by a deadlock or serialization failure are retried up to
// maxTransferAttempts times.
type Custody struct {
	pool  *pgxpool.Pool
	vault domain.ActorID
}

var _ port.Custody = (*Custody)(nil)

// NewCustody returns a custody whose campaign funds are held by vault.
func NewCustody(pool *pgxpool.Pool, vault domain.ActorID) *Custody {
	return &Custody{pool: pool, vault: vault}
}

// Collect moves amount from the donor into the vault.
func (c *Custody) Collect(ctx context.Context, from domain.ActorID, amount domain.Amount) error {
	return c.move(ctx, from, c.vault, amount)
}

// Release moves amount from the vault to the recipient.
func (c *Custody) Release(ctx context.Context, to domain.ActorID, amount domain.Amount) error {
	return c.move(ctx, c.vault, to, amount)
}

// BalanceOf returns the external balance of actor, zero for unknown actors.
func (c *Custody) BalanceOf(ctx context.Context, actor domain.ActorID) (domain.Amount, error) {
	var balance string
	err := c.pool.QueryRow(ctx, `SELECT balance::text FROM custody_accounts WHERE actor = $1`, string(actor)).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return domain.ParseAmount(balance)
}

// Credit adds amount to an account, creating it when needed. It is used to
// seed donor accounts.
func (c *Custody) Credit(ctx context.Context, actor domain.ActorID, amount domain.Amount) error {
	_, err := c.pool.Exec(ctx, creditSQL, string(actor), amount.String())
	return err
}

const creditSQL = `INSERT INTO custody_accounts (actor, balance) VALUES ($1, $2::text::numeric)
ON CONFLICT (actor) DO UPDATE SET balance = custody_accounts.balance + EXCLUDED.balance`

const (
	maxTransferAttempts  = 5
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

func (c *Custody) move(ctx context.Context, from, to domain.ActorID, amount domain.Amount) error {
	var err error
	for attempt := 0; attempt < maxTransferAttempts; attempt++ {
		if err = c.moveOnce(ctx, from, to, amount); !retryable(err) {
			return err
		}
	}
	return fmt.Errorf("transfer %s to %s after %d attempts: %w", from, to, maxTransferAttempts, err)
}

// retryable reports whether err aborted a transaction that can simply be
// run again.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected
}

func (c *Custody) moveOnce(ctx context.Context, from, to domain.ActorID, amount domain.Amount) (err error) {
	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock payer
	var balance string
	err = tx.QueryRow(ctx, `SELECT balance::text FROM custody_accounts WHERE actor = $1 FOR UPDATE`, string(from)).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: no account for %s", port.ErrInsufficientFunds, from)
	}
	if err != nil {
		return err
	}
	held, err := domain.ParseAmount(balance)
	if err != nil {
		return err
	}
	if held < amount {
		return fmt.Errorf("%w: %s holds %s, needs %s", port.ErrInsufficientFunds, from, held, amount)
	}

	if _, err = tx.Exec(ctx, `UPDATE custody_accounts SET balance = balance - $1::text::numeric WHERE actor = $2`, amount.String(), string(from)); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, creditSQL, string(to), amount.String())
	return err
}
