package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	day    = 24 * time.Hour
	finney = Amount(1_000_000_000_000_000)
	goal   = 100 * finney
)

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCampaign(t *testing.T) *Campaign {
	t.Helper()
	c, err := NewCampaign(uuid.New(), "owner", created, day, goal)
	require.NoError(t, err)
	return c
}

// requireConserved checks that raised equals the sum of donor balances.
func requireConserved(t *testing.T, c *Campaign) {
	t.Helper()
	var sum Amount
	for _, v := range c.Balances() {
		sum += v
	}
	require.Equal(t, c.Raised(), sum, "raised must equal the sum of balances")
	require.LessOrEqual(t, c.Withdrawn(), c.Raised())
}

func TestNewCampaign(t *testing.T) {
	c := newTestCampaign(t)
	assert.Equal(t, ActorID("owner"), c.Owner)
	assert.Equal(t, created.Add(day), c.Deadline)
	assert.Equal(t, goal, c.Goal)
	assert.Zero(t, c.Raised())

	_, err := NewCampaign(uuid.New(), "owner", created, -time.Second, goal)
	assert.ErrorIs(t, err, ErrInvalidCampaign)

	_, err = NewCampaign(uuid.New(), "", created, day, goal)
	assert.ErrorIs(t, err, ErrInvalidCampaign)

	_, err = NewCampaign(uuid.Nil, "owner", created, day, goal)
	assert.ErrorIs(t, err, ErrInvalidCampaign)
}

func TestDonateAccumulates(t *testing.T) {
	c := newTestCampaign(t)

	_, err := c.Donate(created, "a", 50*finney)
	require.NoError(t, err)
	assert.Equal(t, 50*finney, c.BalanceOf("a"))
	assert.Equal(t, 50*finney, c.Raised())

	_, err = c.Donate(created, "a", 150*finney)
	require.NoError(t, err)
	assert.Equal(t, 200*finney, c.BalanceOf("a"))

	_, err = c.Donate(created, "b", 5*finney)
	require.NoError(t, err)
	_, err = c.Donate(created, "c", 15*finney)
	require.NoError(t, err)
	_, err = c.Donate(created, "c", 3*finney)
	require.NoError(t, err)
	assert.Equal(t, 5*finney, c.BalanceOf("b"))
	assert.Equal(t, 18*finney, c.BalanceOf("c"))
	assert.Equal(t, 223*finney, c.Raised())
	assert.Equal(t, 3, c.Donors())
	requireConserved(t, c)
}

func TestDonateRejections(t *testing.T) {
	tests := []struct {
		name   string
		at     time.Time
		amount Amount
		want   error
	}{
		{name: "at deadline", at: created.Add(day), amount: finney, want: ErrCampaignClosed},
		{name: "after deadline", at: created.Add(2 * day), amount: finney, want: ErrCampaignClosed},
		{name: "zero after deadline", at: created.Add(day), amount: 0, want: ErrCampaignClosed},
		{name: "zero amount", at: created, amount: 0, want: ErrInsufficientInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCampaign(t)
			_, err := c.Donate(tt.at, "a", tt.amount)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, c.Raised())
			assert.Zero(t, c.BalanceOf("a"))
		})
	}
}

func TestDonateOverflow(t *testing.T) {
	c := newTestCampaign(t)
	_, err := c.Donate(created, "a", Amount(^uint64(0)))
	require.NoError(t, err)

	_, err = c.Donate(created, "b", 1)
	require.ErrorIs(t, err, ErrAmountOverflow)
	assert.Zero(t, c.BalanceOf("b"))
	requireConserved(t, c)
}

func TestDonateClosedAfterDeadline(t *testing.T) {
	c := newTestCampaign(t)
	_, err := c.Donate(created, "a", 10*finney)
	require.NoError(t, err)

	_, err = c.Donate(created.Add(day), "a", 10*finney)
	require.ErrorIs(t, err, ErrCampaignClosed)
	assert.Equal(t, 10*finney, c.BalanceOf("a"))
}

func TestRefund(t *testing.T) {
	c := newTestCampaign(t)
	_, err := c.Donate(created, "a", 50*finney)
	require.NoError(t, err)

	_, err = c.Refund(created.Add(day-time.Second), "a")
	require.ErrorIs(t, err, ErrCampaignStillOpen)

	e, err := c.Refund(created.Add(day), "a")
	require.NoError(t, err)
	assert.Equal(t, KindRefund, e.Kind)
	assert.Equal(t, 50*finney, e.Amount)
	assert.Equal(t, ActorID("a"), e.Actor)
	assert.Zero(t, c.BalanceOf("a"))
	assert.Zero(t, c.Raised())
	requireConserved(t, c)

	_, err = c.Refund(created.Add(day), "a")
	require.ErrorIs(t, err, ErrNoBalance)
}

func TestRefundRejections(t *testing.T) {
	t.Run("no balance", func(t *testing.T) {
		c := newTestCampaign(t)
		_, err := c.Donate(created, "b", 50*finney)
		require.NoError(t, err)
		_, err = c.Refund(created.Add(day), "c")
		require.ErrorIs(t, err, ErrNoBalance)
	})

	t.Run("goal reached", func(t *testing.T) {
		c := newTestCampaign(t)
		_, err := c.Donate(created, "b", goal)
		require.NoError(t, err)
		_, err = c.Refund(created.Add(day), "b")
		require.ErrorIs(t, err, ErrGoalReached)
		assert.Equal(t, goal, c.BalanceOf("b"))
	})

	t.Run("still open with balance", func(t *testing.T) {
		c := newTestCampaign(t)
		_, err := c.Donate(created, "b", 50*finney)
		require.NoError(t, err)
		_, err = c.Refund(created, "b")
		require.ErrorIs(t, err, ErrCampaignStillOpen)
	})
}

func TestWithdraw(t *testing.T) {
	c := newTestCampaign(t)

	_, err := c.Withdraw(created, "owner")
	require.ErrorIs(t, err, ErrGoalNotReached)

	_, err = c.Donate(created, "b", 30*finney)
	require.NoError(t, err)
	_, err = c.Donate(created, "c", 70*finney)
	require.NoError(t, err)

	_, err = c.Withdraw(created, "b")
	require.ErrorIs(t, err, ErrNotOwner)

	e, err := c.Withdraw(created, "owner")
	require.NoError(t, err)
	assert.Equal(t, KindWithdrawal, e.Kind)
	assert.Equal(t, goal, e.Amount)
	assert.Equal(t, goal, c.Withdrawn())
	assert.Equal(t, goal, c.Raised(), "withdraw leaves raised untouched")
	requireConserved(t, c)

	_, err = c.Withdraw(created, "owner")
	require.ErrorIs(t, err, ErrNothingToWithdraw)

	// Still open, so later donations become withdrawable again.
	_, err = c.Donate(created, "d", 5*finney)
	require.NoError(t, err)
	e, err = c.Withdraw(created.Add(2*day), "owner")
	require.NoError(t, err)
	assert.Equal(t, 5*finney, e.Amount)
	requireConserved(t, c)
}

func TestWithdrawNotOwnerRegardlessOfRaised(t *testing.T) {
	c, err := NewCampaign(uuid.New(), "second", created, day, goal)
	require.NoError(t, err)
	_, err = c.Donate(created, "first", goal)
	require.NoError(t, err)

	_, err = c.Withdraw(created, "first")
	require.ErrorIs(t, err, ErrNotOwner)
	_, err = c.Withdraw(created.Add(day), "first")
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestIsFinishedAndStatus(t *testing.T) {
	c := newTestCampaign(t)
	assert.False(t, c.IsFinished(created))
	assert.False(t, c.IsFinished(created.Add(day-time.Nanosecond)))
	assert.True(t, c.IsFinished(created.Add(day)))
	assert.True(t, c.IsFinished(created.Add(2*day)))

	assert.Equal(t, StatusOpen, c.Status(created))
	assert.Equal(t, StatusUnsuccessful, c.Status(created.Add(day)))

	_, err := c.Donate(created, "a", goal)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, c.Status(created))
	assert.Equal(t, StatusSuccessful, c.Status(created.Add(day)))
}

func TestApplyRejectsInconsistentEntries(t *testing.T) {
	c := newTestCampaign(t)
	other := newTestCampaign(t)

	err := c.Apply(newEntry(other.ID, KindDonation, "a", finney, created))
	assert.ErrorIs(t, err, ErrLedgerMismatch)

	err = c.Apply(newEntry(c.ID, KindDonation, "a", 0, created))
	assert.ErrorIs(t, err, ErrLedgerMismatch)

	err = c.Apply(newEntry(c.ID, KindRefund, "a", finney, created))
	assert.ErrorIs(t, err, ErrLedgerMismatch)

	err = c.Apply(newEntry(c.ID, KindWithdrawal, "owner", finney, created))
	assert.ErrorIs(t, err, ErrLedgerMismatch)

	err = c.Apply(newEntry(c.ID, "bonus", "a", finney, created))
	assert.ErrorIs(t, err, ErrUnknownEntryKind)

	requireConserved(t, c)
	assert.Zero(t, c.Raised())
}

func TestReversalRestoresLedger(t *testing.T) {
	c := newTestCampaign(t)
	_, err := c.Donate(created, "a", 40*finney)
	require.NoError(t, err)

	refund, err := c.Refund(created.Add(day), "a")
	require.NoError(t, err)
	require.NoError(t, c.Apply(refund.Reversal(created.Add(day))))
	assert.Equal(t, 40*finney, c.BalanceOf("a"))
	assert.Equal(t, 40*finney, c.Raised())

	donation, err := c.Donate(created, "b", 60*finney)
	require.NoError(t, err)
	withdrawal, err := c.Withdraw(created, "owner")
	require.NoError(t, err)
	require.NoError(t, c.Apply(withdrawal.Reversal(created)))
	assert.Zero(t, c.Withdrawn())

	require.NoError(t, c.Apply(donation.Reversal(created)))
	assert.Zero(t, c.BalanceOf("b"))
	assert.Equal(t, 40*finney, c.Raised())
	requireConserved(t, c)

	assert.Equal(t, KindRefund, refund.Reversal(created).Reversal(created).Kind)
}

func TestReplay(t *testing.T) {
	src := newTestCampaign(t)
	var journal []Entry
	record := func(e Entry, err error) {
		t.Helper()
		require.NoError(t, err)
		e.Seq = uint64(len(journal) + 1)
		journal = append(journal, e)
	}
	record(src.Donate(created, "a", 20*finney))
	record(src.Donate(created, "b", 30*finney))
	record(src.Donate(created, "a", 5*finney))
	record(src.Refund(created.Add(day), "b"))

	dst, err := RestoreCampaign(src.ID, src.Owner, src.CreatedAt, src.Deadline, src.Goal)
	require.NoError(t, err)
	require.NoError(t, dst.Replay(journal))

	assert.Equal(t, src.Balances(), dst.Balances())
	assert.Equal(t, src.Raised(), dst.Raised())
	assert.Equal(t, 25*finney, dst.Raised())

	broken := append([]Entry{}, journal...)
	broken = append(broken, journal[3])
	fresh, err := RestoreCampaign(src.ID, src.Owner, src.CreatedAt, src.Deadline, src.Goal)
	require.NoError(t, err)
	require.ErrorIs(t, fresh.Replay(broken), ErrLedgerMismatch)
}

func TestAmount(t *testing.T) {
	a, err := ParseAmount("100000000000000000")
	require.NoError(t, err)
	assert.Equal(t, goal, a)
	assert.Equal(t, "100000000000000000", a.String())

	_, err = ParseAmount("-1")
	assert.Error(t, err)

	id := uuid.MustParse("7b0c1f6e-8f3a-4d7e-9a8c-2b1d3e4f5a6b")
	assert.Equal(t, ActorID("campaign:7b0c1f6e-8f3a-4d7e-9a8c-2b1d3e4f5a6b"), VaultActor(id))
}
