package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind names the ledger effect recorded by an Entry.
type EntryKind string

const (
	KindDonation           EntryKind = "donation"
	KindDonationReversal   EntryKind = "donation_reversal"
	KindRefund             EntryKind = "refund"
	KindRefundReversal     EntryKind = "refund_reversal"
	KindWithdrawal         EntryKind = "withdrawal"
	KindWithdrawalReversal EntryKind = "withdrawal_reversal"
)

// Entry is one committed change to a campaign ledger. Entries are appended
// to the journal in Seq order and replaying them rebuilds the ledger.
type Entry struct {
	ID         uuid.UUID
	Seq        uint64 // assigned by the journal
	CampaignID uuid.UUID
	Kind       EntryKind
	Actor      ActorID
	Amount     Amount
	CreatedAt  time.Time
}

func newEntry(campaignID uuid.UUID, kind EntryKind, actor ActorID, amount Amount, at time.Time) Entry {
	return Entry{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Kind:       kind,
		Actor:      actor,
		Amount:     amount,
		CreatedAt:  at.UTC(),
	}
}

// Reversal returns the entry that undoes e. Reversing a reversal yields the
// original kind again.
func (e Entry) Reversal(at time.Time) Entry {
	var kind EntryKind
	switch e.Kind {
	case KindDonation:
		kind = KindDonationReversal
	case KindDonationReversal:
		kind = KindDonation
	case KindRefund:
		kind = KindRefundReversal
	case KindRefundReversal:
		kind = KindRefund
	case KindWithdrawal:
		kind = KindWithdrawalReversal
	case KindWithdrawalReversal:
		kind = KindWithdrawal
	default:
		kind = e.Kind
	}
	return newEntry(e.CampaignID, kind, e.Actor, e.Amount, at)
}
