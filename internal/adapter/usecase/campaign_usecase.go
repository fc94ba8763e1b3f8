package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const replayPageSize = 200

// CampaignParams describes the campaign to create when the journal does not
// know it yet. It is consumed once, on first start.
type CampaignParams struct {
	ID       uuid.UUID
	Owner    domain.ActorID
	Duration time.Duration
	Goal     domain.Amount
}

// LoadCampaign returns the campaign identified by params.ID with its ledger
// rebuilt from the journal. A campaign that does not exist yet is created
// with the current time as its creation time.
func LoadCampaign(ctx context.Context, journal port.Journal, clock port.Clock, params CampaignParams) (*domain.Campaign, error) {
	c, err := journal.GetCampaign(ctx, params.ID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		c, err = domain.NewCampaign(params.ID, params.Owner, clock.Now(), params.Duration, params.Goal)
		if err != nil {
			return nil, err
		}
		if err = journal.CreateCampaign(ctx, c); err != nil {
			return nil, fmt.Errorf("create campaign: %w", err)
		}
		return c, nil
	}

	var afterSeq uint64
	for {
		entries, err := journal.ListEntries(ctx, c.ID, afterSeq, replayPageSize)
		if err != nil {
			return nil, fmt.Errorf("list entries after %d: %w", afterSeq, err)
		}
		if len(entries) == 0 {
			return c, nil
		}
		if err = c.Replay(entries); err != nil {
			return nil, err
		}
		afterSeq = entries[len(entries)-1].Seq
	}
}

// CampaignUseCase provides the campaign business logic. It serializes
// access to the ledger and orders every operation as checks, then ledger
// effects, then the custody interaction. The lock is never held while
// custody runs, so custody may call back into the use case and will see
// the ledger as already updated.
type CampaignUseCase struct {
	mu       sync.Mutex
	campaign *domain.Campaign
	// pending holds applied entries whose journal append failed, in
	// apply order. They are written before any newer entry.
	pending []domain.Entry

	clock   port.Clock
	custody port.Custody
	journal port.Journal
	logger  *slog.Logger
}

// NewCampaignUseCase creates a use case over an already loaded campaign.
func NewCampaignUseCase(campaign *domain.Campaign, clock port.Clock, custody port.Custody, journal port.Journal, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		campaign: campaign,
		clock:    clock,
		custody:  custody,
		journal:  journal,
		logger:   logger.With(slog.String("campaign_id", campaign.ID.String())),
	}
}

// Donate collects amount from caller and credits the caller's balance. The
// ledger only changes after custody accepted the funds, and the deadline is
// checked again at that point; if the donation cannot be credited or
// recorded the funds are handed back.
func (u *CampaignUseCase) Donate(ctx context.Context, caller domain.ActorID, amount domain.Amount) (domain.Amount, error) {
	u.mu.Lock()
	err := u.flush(ctx)
	if err == nil {
		err = u.campaign.CheckDonate(u.clock.Now(), amount)
	}
	u.mu.Unlock()
	if err != nil {
		return 0, err
	}

	if err = u.custody.Collect(ctx, caller, amount); err != nil {
		return 0, fmt.Errorf("collect donation: %w", err)
	}

	// custody may have taken long or re-entered; judge the donation at the
	// time it is credited
	u.mu.Lock()
	now := u.clock.Now()
	var entry domain.Entry
	if err = u.flush(ctx); err == nil {
		entry, err = u.campaign.Donate(now, caller, amount)
		if err == nil {
			if err = u.journal.Append(ctx, &entry); err != nil {
				err = fmt.Errorf("record donation: %w", err)
				u.undo(entry, now)
			}
		}
	}
	balance := u.campaign.BalanceOf(caller)
	u.mu.Unlock()

	if err != nil {
		if rerr := u.custody.Release(ctx, caller, amount); rerr != nil {
			u.logger.Error("return uncredited donation",
				slog.String("actor", string(caller)),
				slog.String("amount", amount.String()),
				slog.Any("error", rerr))
		}
		return 0, err
	}

	u.logger.Info("donation accepted",
		slog.String("actor", string(caller)),
		slog.String("amount", amount.String()),
		slog.String("balance", balance.String()))
	return balance, nil
}

// Refund sends the caller's whole balance back once the campaign finished
// without reaching its goal.
func (u *CampaignUseCase) Refund(ctx context.Context, caller domain.ActorID) (domain.Amount, error) {
	u.mu.Lock()
	now := u.clock.Now()
	entry, err := u.mutate(ctx, now, func() (domain.Entry, error) {
		return u.campaign.Refund(now, caller)
	})
	u.mu.Unlock()
	if err != nil {
		return 0, err
	}

	if err = u.payout(ctx, entry); err != nil {
		return 0, err
	}
	u.logger.Info("refund sent",
		slog.String("actor", string(caller)),
		slog.String("amount", entry.Amount.String()))
	return entry.Amount, nil
}

// Withdraw sends every unreleased donation to the owner once the goal is
// reached, regardless of the deadline.
func (u *CampaignUseCase) Withdraw(ctx context.Context, caller domain.ActorID) (domain.Amount, error) {
	u.mu.Lock()
	now := u.clock.Now()
	entry, err := u.mutate(ctx, now, func() (domain.Entry, error) {
		return u.campaign.Withdraw(now, caller)
	})
	u.mu.Unlock()
	if err != nil {
		return 0, err
	}

	if err = u.payout(ctx, entry); err != nil {
		return 0, err
	}
	u.logger.Info("funds withdrawn",
		slog.String("actor", string(caller)),
		slog.String("amount", entry.Amount.String()))
	return entry.Amount, nil
}

// IsFinished reports whether the deadline has passed.
func (u *CampaignUseCase) IsFinished() bool {
	now := u.clock.Now()
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.campaign.IsFinished(now)
}

// Snapshot returns the current campaign state.
func (u *CampaignUseCase) Snapshot() port.CampaignSnapshot {
	now := u.clock.Now()
	u.mu.Lock()
	defer u.mu.Unlock()
	c := u.campaign
	return port.CampaignSnapshot{
		ID:          c.ID,
		Owner:       c.Owner,
		Goal:        c.Goal,
		Raised:      c.Raised(),
		Withdrawn:   c.Withdrawn(),
		Donors:      c.Donors(),
		CreatedAt:   c.CreatedAt,
		Deadline:    c.Deadline,
		Status:      c.Status(now),
		Finished:    c.IsFinished(now),
		GoalReached: c.GoalReached(),
	}
}

// BalanceOf returns the recorded contribution of actor.
func (u *CampaignUseCase) BalanceOf(actor domain.ActorID) domain.Amount {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.campaign.BalanceOf(actor)
}

// Flush writes ledger entries that are applied in memory but missing from
// the journal. Call it before shutdown so a restart replays the same ledger.
func (u *CampaignUseCase) Flush(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.flush(ctx)
}

// mutate flushes pending entries, applies op and journals its entry. On a
// journal failure the ledger effect is undone. Must be called with u.mu
// held.
func (u *CampaignUseCase) mutate(ctx context.Context, now time.Time, op func() (domain.Entry, error)) (domain.Entry, error) {
	if err := u.flush(ctx); err != nil {
		return domain.Entry{}, err
	}
	entry, err := op()
	if err != nil {
		return domain.Entry{}, err
	}
	if err = u.journal.Append(ctx, &entry); err != nil {
		u.undo(entry, now)
		return domain.Entry{}, fmt.Errorf("record %s: %w", entry.Kind, err)
	}
	return entry, nil
}

// flush appends pending entries in order and stops at the first failure.
// Must be called with u.mu held.
func (u *CampaignUseCase) flush(ctx context.Context) error {
	for len(u.pending) > 0 {
		e := u.pending[0]
		if err := u.journal.Append(ctx, &e); err != nil {
			return fmt.Errorf("%w: %d unrecorded entries: %w", port.ErrJournalBehind, len(u.pending), err)
		}
		u.pending = u.pending[1:]
		u.logger.Info("pending entry recorded",
			slog.String("entry_id", e.ID.String()),
			slog.String("kind", string(e.Kind)))
	}
	u.pending = nil
	return nil
}

// payout releases the funds described by a recorded entry. A failed
// transfer restores the ledger and journals the reversal; a reversal the
// journal refuses stays pending and blocks further mutations until it is
// written.
func (u *CampaignUseCase) payout(ctx context.Context, entry domain.Entry) error {
	err := u.custody.Release(ctx, entry.Actor, entry.Amount)
	if err == nil {
		return nil
	}
	transferErr := fmt.Errorf("%w: %w", port.ErrTransferFailed, err)
	now := u.clock.Now()

	u.mu.Lock()
	defer u.mu.Unlock()
	reversal := entry.Reversal(now)
	if aerr := u.campaign.Apply(reversal); aerr != nil {
		u.logger.Error("restore ledger after failed transfer",
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", aerr))
		return errors.Join(transferErr, aerr)
	}
	u.pending = append(u.pending, reversal)
	if jerr := u.flush(ctx); jerr != nil {
		u.logger.Error("record reversal",
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", jerr))
		return errors.Join(transferErr, jerr)
	}
	return transferErr
}

// undo reverts an applied entry in memory only. Must be called with u.mu
// held.
func (u *CampaignUseCase) undo(entry domain.Entry, now time.Time) {
	if err := u.campaign.Apply(entry.Reversal(now)); err != nil {
		u.logger.Error("undo ledger entry",
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", err))
	}
}
