package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a campaign. It is always derived from
// the clock and the ledger, never stored.
type Status string

const (
	StatusOpen         Status = "open"
	StatusSuccessful   Status = "successful"
	StatusUnsuccessful Status = "unsuccessful"
)

// Campaign is a time-boxed fundraiser and the sole owner of its ledger.
// Identity, owner, goal and deadline are fixed at creation. The ledger
// (raised, withdrawn and the per-donor balances) only changes through
// Donate, Refund, Withdraw and Apply.
//
// Campaign is not safe for concurrent use; callers serialize access.
type Campaign struct {
	ID        uuid.UUID
	Owner     ActorID
	Goal      Amount
	CreatedAt time.Time
	Deadline  time.Time

	raised    Amount
	withdrawn Amount
	balances  map[ActorID]Amount
}

// NewCampaign creates a campaign owned by owner that accepts donations for
// duration after createdAt.
func NewCampaign(id uuid.UUID, owner ActorID, createdAt time.Time, duration time.Duration, goal Amount) (*Campaign, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %s", ErrInvalidCampaign, duration)
	}
	return RestoreCampaign(id, owner, createdAt, createdAt.Add(duration), goal)
}

// RestoreCampaign rebuilds a campaign header loaded from storage. The ledger
// starts empty and is filled by replaying journal entries through Apply.
func RestoreCampaign(id uuid.UUID, owner ActorID, createdAt, deadline time.Time, goal Amount) (*Campaign, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidCampaign)
	}
	if owner == "" {
		return nil, fmt.Errorf("%w: missing owner", ErrInvalidCampaign)
	}
	if deadline.Before(createdAt) {
		return nil, fmt.Errorf("%w: deadline before creation", ErrInvalidCampaign)
	}
	return &Campaign{
		ID:        id,
		Owner:     owner,
		Goal:      goal,
		CreatedAt: createdAt.UTC(),
		Deadline:  deadline.UTC(),
		balances:  make(map[ActorID]Amount),
	}, nil
}

// Raised is the sum of all donor balances.
func (c *Campaign) Raised() Amount { return c.raised }

// Withdrawn is the amount already released to the owner.
func (c *Campaign) Withdrawn() Amount { return c.withdrawn }

// Available is the amount the owner could still withdraw.
func (c *Campaign) Available() Amount { return c.raised - c.withdrawn }

// BalanceOf returns the recorded contribution of actor, zero when absent.
func (c *Campaign) BalanceOf(actor ActorID) Amount { return c.balances[actor] }

// Donors returns the number of actors holding a non-zero balance.
func (c *Campaign) Donors() int { return len(c.balances) }

// Balances returns a copy of the per-donor ledger.
func (c *Campaign) Balances() map[ActorID]Amount {
	out := make(map[ActorID]Amount, len(c.balances))
	for k, v := range c.balances {
		out[k] = v
	}
	return out
}

// IsFinished reports whether the deadline has passed at now.
func (c *Campaign) IsFinished(now time.Time) bool {
	return !now.Before(c.Deadline)
}

// GoalReached reports whether the raised amount meets the goal.
func (c *Campaign) GoalReached() bool {
	return c.raised >= c.Goal
}

// Status derives the lifecycle stage at now. A campaign whose goal is
// already reached stays Open until the deadline even though the owner may
// withdraw.
func (c *Campaign) Status(now time.Time) Status {
	switch {
	case !c.IsFinished(now):
		return StatusOpen
	case c.GoalReached():
		return StatusSuccessful
	default:
		return StatusUnsuccessful
	}
}

// CheckDonate validates a donation without changing the ledger.
func (c *Campaign) CheckDonate(now time.Time, amount Amount) error {
	if c.IsFinished(now) {
		return ErrCampaignClosed
	}
	if amount == 0 {
		return ErrInsufficientInput
	}
	if c.raised+amount < c.raised {
		return ErrAmountOverflow
	}
	return nil
}

// Donate credits amount to caller. Repeated donations accumulate.
func (c *Campaign) Donate(now time.Time, caller ActorID, amount Amount) (Entry, error) {
	if err := c.CheckDonate(now, amount); err != nil {
		return Entry{}, err
	}
	e := newEntry(c.ID, KindDonation, caller, amount, now)
	return e, c.Apply(e)
}

// Refund zeroes the caller's balance and returns the entry describing the
// amount that must be sent back. The ledger is updated before the caller
// moves any funds, so a nested refund observes a zero balance.
func (c *Campaign) Refund(now time.Time, caller ActorID) (Entry, error) {
	if !c.IsFinished(now) {
		return Entry{}, ErrCampaignStillOpen
	}
	if c.GoalReached() {
		return Entry{}, ErrGoalReached
	}
	amount := c.balances[caller]
	if amount == 0 {
		return Entry{}, ErrNoBalance
	}
	e := newEntry(c.ID, KindRefund, caller, amount, now)
	return e, c.Apply(e)
}

// Withdraw releases every unreleased donation to the owner. There is no
// time gate: once the goal is met the owner may withdraw immediately.
func (c *Campaign) Withdraw(now time.Time, caller ActorID) (Entry, error) {
	if caller != c.Owner {
		return Entry{}, ErrNotOwner
	}
	if !c.GoalReached() {
		return Entry{}, ErrGoalNotReached
	}
	amount := c.Available()
	if amount == 0 {
		return Entry{}, ErrNothingToWithdraw
	}
	e := newEntry(c.ID, KindWithdrawal, caller, amount, now)
	return e, c.Apply(e)
}

// Apply performs the ledger effect of e. It is used both for live
// operations and for replaying the journal, and rejects entries that would
// break the ledger invariants.
func (c *Campaign) Apply(e Entry) error {
	if e.CampaignID != c.ID {
		return fmt.Errorf("%w: entry %s belongs to campaign %s", ErrLedgerMismatch, e.ID, e.CampaignID)
	}
	if e.Amount == 0 {
		return fmt.Errorf("%w: entry %s has zero amount", ErrLedgerMismatch, e.ID)
	}

	switch e.Kind {
	case KindDonation, KindRefundReversal:
		if c.raised+e.Amount < c.raised {
			return ErrAmountOverflow
		}
		c.balances[e.Actor] += e.Amount
		c.raised += e.Amount

	case KindRefund:
		if c.balances[e.Actor] != e.Amount {
			return fmt.Errorf("%w: refund of %s, balance %s", ErrLedgerMismatch, e.Amount, c.balances[e.Actor])
		}
		delete(c.balances, e.Actor)
		c.raised -= e.Amount

	case KindDonationReversal:
		balance := c.balances[e.Actor]
		if balance < e.Amount {
			return fmt.Errorf("%w: reverse %s, balance %s", ErrLedgerMismatch, e.Amount, balance)
		}
		if balance == e.Amount {
			delete(c.balances, e.Actor)
		} else {
			c.balances[e.Actor] = balance - e.Amount
		}
		c.raised -= e.Amount

	case KindWithdrawal:
		if e.Amount > c.Available() {
			return fmt.Errorf("%w: withdraw %s, available %s", ErrLedgerMismatch, e.Amount, c.Available())
		}
		c.withdrawn += e.Amount

	case KindWithdrawalReversal:
		if e.Amount > c.withdrawn {
			return fmt.Errorf("%w: reverse withdrawal %s, withdrawn %s", ErrLedgerMismatch, e.Amount, c.withdrawn)
		}
		c.withdrawn -= e.Amount

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntryKind, e.Kind)
	}
	return nil
}

// Replay applies entries in order, stopping at the first inconsistency.
func (c *Campaign) Replay(entries []Entry) error {
	for _, e := range entries {
		if err := c.Apply(e); err != nil {
			return fmt.Errorf("replay entry %d: %w", e.Seq, err)
		}
	}
	return nil
}
