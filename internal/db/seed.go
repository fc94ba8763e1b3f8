package db

import (
	"context"
	"fmt"

	"crowdfund/internal/core/domain"
)

// Crediter funds an external account.
type Crediter interface {
	Credit(ctx context.Context, actor domain.ActorID, amount domain.Amount) error
}

// Seed gives every actor an external balance of amount so they can donate
// in a local environment.
func Seed(ctx context.Context, c Crediter, actors []domain.ActorID, amount domain.Amount) error {
	for _, a := range actors {
		if a == "" {
			continue
		}
		if err := c.Credit(ctx, a, amount); err != nil {
			return fmt.Errorf("credit %s: %w", a, err)
		}
	}
	return nil
}
