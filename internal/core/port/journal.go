package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

var (
	ErrCampaignExists   = errors.New("campaign already exists")
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrJournalBehind reports ledger entries applied in memory that could
	// not be journaled yet. Further mutations are refused until they are.
	ErrJournalBehind = errors.New("journal behind ledger")
)

// Journal persists campaigns and their append-only ledger entries. It is an
// outbound port in hexagonal architecture. Implementations must assign
// strictly increasing sequence numbers per campaign.
type Journal interface {
	// CreateCampaign stores a new campaign header.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns the campaign header by id with an empty ledger,
	// or nil when it does not exist.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// Append stores e and sets its Seq.
	Append(ctx context.Context, e *domain.Entry) error
	// ListEntries returns up to limit entries with Seq greater than afterSeq
	// in ascending order.
	ListEntries(ctx context.Context, campaignID uuid.UUID, afterSeq uint64, limit int) ([]domain.Entry, error)
}
