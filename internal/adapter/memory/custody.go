package memory

import (
	"context"
	"fmt"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Custody implements port.Custody with in-process account balances. It is
// used by the memory store driver and by tests.
type Custody struct {
	mu       sync.Mutex
	vault    domain.ActorID
	accounts map[domain.ActorID]domain.Amount
}

// NewCustody returns a custody whose campaign funds are held by vault.
func NewCustody(vault domain.ActorID) *Custody {
	return &Custody{vault: vault, accounts: make(map[domain.ActorID]domain.Amount)}
}

// Fund credits an external account, e.g. to seed demo donors.
func (c *Custody) Fund(actor domain.ActorID, amount domain.Amount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[actor] += amount
}

// Credit is Fund with the signature used by seeding.
func (c *Custody) Credit(_ context.Context, actor domain.ActorID, amount domain.Amount) error {
	c.Fund(actor, amount)
	return nil
}

// Vault returns the balance currently held for the campaign.
func (c *Custody) Vault() domain.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accounts[c.vault]
}

// Collect moves amount from the donor into the vault.
func (c *Custody) Collect(_ context.Context, from domain.ActorID, amount domain.Amount) error {
	return c.move(from, c.vault, amount)
}

// Release moves amount from the vault to the recipient.
func (c *Custody) Release(_ context.Context, to domain.ActorID, amount domain.Amount) error {
	return c.move(c.vault, to, amount)
}

// BalanceOf returns the external balance of actor.
func (c *Custody) BalanceOf(_ context.Context, actor domain.ActorID) (domain.Amount, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accounts[actor], nil
}

func (c *Custody) move(from, to domain.ActorID, amount domain.Amount) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accounts[from] < amount {
		return fmt.Errorf("%w: %s holds %s, needs %s", port.ErrInsufficientFunds, from, c.accounts[from], amount)
	}
	if c.accounts[to]+amount < c.accounts[to] {
		return fmt.Errorf("credit %s: %w", to, domain.ErrAmountOverflow)
	}
	c.accounts[from] -= amount
	c.accounts[to] += amount
	return nil
}
