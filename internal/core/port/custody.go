package port

import (
	"context"
	"errors"

	"crowdfund/internal/core/domain"
)

var (
	// ErrInsufficientFunds is returned by Custody when the paying account
	// cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTransferFailed marks a failed payout. The ledger effect of the
	// operation has been rolled back when it is returned.
	ErrTransferFailed = errors.New("transfer failed")
)

// Custody holds the funds donated to a campaign. It is an outbound port;
// implementations move value between an actor's account and the campaign
// vault and must make every single transfer atomic.
type Custody interface {
	// Collect moves amount from the donor into the campaign vault.
	Collect(ctx context.Context, from domain.ActorID, amount domain.Amount) error
	// Release moves amount from the campaign vault to the recipient.
	Release(ctx context.Context, to domain.ActorID, amount domain.Amount) error
	// BalanceOf returns the external balance held by actor.
	BalanceOf(ctx context.Context, actor domain.ActorID) (domain.Amount, error)
}
