package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by a crowdfunding
// campaign. This interface represents the primary port into the
// application domain. The caller identity is always supplied by the
// inbound adapter.
type CampaignUseCase interface {
	// Donate collects amount from caller and credits it to the caller's
	// balance. It returns the caller's accumulated balance. Donations are
	// rejected once the deadline has passed.
	Donate(ctx context.Context, caller domain.ActorID, amount domain.Amount) (domain.Amount, error)

	// Refund returns the caller's whole balance after an unsuccessful
	// campaign and returns the amount sent back.
	Refund(ctx context.Context, caller domain.ActorID) (domain.Amount, error)

	// Withdraw releases all unreleased funds to the owner once the goal is
	// reached and returns the amount released.
	Withdraw(ctx context.Context, caller domain.ActorID) (domain.Amount, error)

	// IsFinished reports whether the deadline has passed.
	IsFinished() bool

	// Snapshot returns a read-only view of the campaign state.
	Snapshot() CampaignSnapshot

	// BalanceOf returns the recorded contribution of actor.
	BalanceOf(actor domain.ActorID) domain.Amount
}

// CampaignSnapshot is a point-in-time view of a campaign. It is a DTO used
// by inbound adapters and does not contain domain behaviour.
type CampaignSnapshot struct {
	ID          uuid.UUID
	Owner       domain.ActorID
	Goal        domain.Amount
	Raised      domain.Amount
	Withdrawn   domain.Amount
	Donors      int
	CreatedAt   time.Time
	Deadline    time.Time
	Status      domain.Status
	Finished    bool
	GoalReached bool
}
