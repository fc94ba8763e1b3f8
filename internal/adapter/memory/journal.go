package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type campaignRow struct {
	id        uuid.UUID
	owner     domain.ActorID
	goal      domain.Amount
	createdAt time.Time
	deadline  time.Time
}

// Journal implements port.Journal in memory. Nothing survives a restart.
type Journal struct {
	mu        sync.Mutex
	seq       uint64
	campaigns map[uuid.UUID]campaignRow
	entries   map[uuid.UUID][]domain.Entry
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{
		campaigns: make(map[uuid.UUID]campaignRow),
		entries:   make(map[uuid.UUID][]domain.Entry),
	}
}

// CreateCampaign stores the campaign header.
func (j *Journal) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.campaigns[c.ID]; ok {
		return fmt.Errorf("%w: %s", port.ErrCampaignExists, c.ID)
	}
	j.campaigns[c.ID] = campaignRow{
		id:        c.ID,
		owner:     c.Owner,
		goal:      c.Goal,
		createdAt: c.CreatedAt,
		deadline:  c.Deadline,
	}
	return nil
}

// GetCampaign returns a campaign header with an empty ledger, or nil.
func (j *Journal) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	j.mu.Lock()
	row, ok := j.campaigns[id]
	j.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return domain.RestoreCampaign(row.id, row.owner, row.createdAt, row.deadline, row.goal)
}

// Append stores a copy of e and assigns its sequence number.
func (j *Journal) Append(_ context.Context, e *domain.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.campaigns[e.CampaignID]; !ok {
		return fmt.Errorf("%w: %s", port.ErrCampaignNotFound, e.CampaignID)
	}
	j.seq++
	e.Seq = j.seq
	j.entries[e.CampaignID] = append(j.entries[e.CampaignID], *e)
	return nil
}

// ListEntries returns up to limit entries after afterSeq.
func (j *Journal) ListEntries(_ context.Context, campaignID uuid.UUID, afterSeq uint64, limit int) ([]domain.Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []domain.Entry
	for _, e := range j.entries[campaignID] {
		if e.Seq <= afterSeq {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}
