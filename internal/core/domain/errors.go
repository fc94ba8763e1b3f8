package domain

import "errors"

// Rejections returned by campaign operations. They are permanent for the
// current state: the caller has to wait for time to pass or for more
// donations, or is not allowed at all.
var (
	ErrCampaignClosed    = errors.New("campaign closed")
	ErrCampaignStillOpen = errors.New("campaign still open")
	ErrGoalReached       = errors.New("goal reached")
	ErrGoalNotReached    = errors.New("goal not reached")
	ErrNoBalance         = errors.New("no balance")
	ErrNotOwner          = errors.New("not owner")
	ErrInsufficientInput = errors.New("insufficient input")
	ErrAmountOverflow    = errors.New("amount overflow")
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
)

// Ledger consistency errors, raised while applying journal entries.
var (
	ErrInvalidCampaign  = errors.New("invalid campaign")
	ErrUnknownEntryKind = errors.New("unknown entry kind")
	ErrLedgerMismatch   = errors.New("ledger mismatch")
)
