package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const uniqueViolation = "23505"

// Journal implements port.Journal using pgxpool for PostgreSQL. Amounts are
// stored as NUMERIC(20,0) because they may exceed the range of BIGINT.
type Journal struct {
	pool *pgxpool.Pool
}

var _ port.Journal = (*Journal)(nil)

// NewJournal returns a new journal instance.
func NewJournal(pool *pgxpool.Pool) *Journal {
	return &Journal{pool: pool}
}

// CreateCampaign inserts the campaign header.
func (j *Journal) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := j.pool.Exec(ctx, `INSERT INTO campaigns (id, owner, goal, created_at, deadline)
VALUES ($1, $2, $3::text::numeric, $4, $5)`,
		c.ID, string(c.Owner), c.Goal.String(), c.CreatedAt, c.Deadline)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", port.ErrCampaignExists, c.ID)
	}
	return err
}

// GetCampaign returns the campaign header by id, or nil when missing.
func (j *Journal) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var (
		owner     string
		goal      string
		createdAt time.Time
		deadline  time.Time
	)
	err := j.pool.QueryRow(ctx, `SELECT owner, goal::text, created_at, deadline FROM campaigns WHERE id = $1`, id).
		Scan(&owner, &goal, &createdAt, &deadline)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g, err := domain.ParseAmount(goal)
	if err != nil {
		return nil, err
	}
	return domain.RestoreCampaign(id, domain.ActorID(owner), createdAt, deadline, g)
}

// Append inserts the entry and sets its sequence number.
func (j *Journal) Append(ctx context.Context, e *domain.Entry) error {
	var seq int64
	err := j.pool.QueryRow(ctx, `INSERT INTO ledger_entries (id, campaign_id, kind, actor, amount, created_at)
VALUES ($1, $2, $3, $4, $5::text::numeric, $6) RETURNING seq`,
		e.ID, e.CampaignID, string(e.Kind), string(e.Actor), e.Amount.String(), e.CreatedAt).Scan(&seq)
	if err != nil {
		return err
	}
	e.Seq = uint64(seq)
	return nil
}

// ListEntries returns up to limit entries after afterSeq in order.
func (j *Journal) ListEntries(ctx context.Context, campaignID uuid.UUID, afterSeq uint64, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := j.pool.Query(ctx, `SELECT seq, id, kind, actor, amount::text, created_at
FROM ledger_entries
WHERE campaign_id = $1 AND seq > $2
ORDER BY seq
LIMIT $3`, campaignID, int64(afterSeq), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entry, error) {
		var (
			e      domain.Entry
			seq    int64
			kind   string
			actor  string
			amount string
		)
		if err := row.Scan(&seq, &e.ID, &kind, &actor, &amount, &e.CreatedAt); err != nil {
			return e, err
		}
		a, err := domain.ParseAmount(amount)
		if err != nil {
			return e, err
		}
		e.Seq = uint64(seq)
		e.CampaignID = campaignID
		e.Kind = domain.EntryKind(kind)
		e.Actor = domain.ActorID(actor)
		e.Amount = a
		return e, nil
	})
}
