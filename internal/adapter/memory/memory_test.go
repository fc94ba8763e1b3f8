package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

func TestCustodyMovesFunds(t *testing.T) {
	ctx := context.Background()
	c := NewCustody("vault")
	c.Fund("alice", 100)

	require.NoError(t, c.Collect(ctx, "alice", 60))
	assert.Equal(t, domain.Amount(60), c.Vault())

	err := c.Collect(ctx, "alice", 41)
	require.ErrorIs(t, err, port.ErrInsufficientFunds)

	require.NoError(t, c.Release(ctx, "bob", 60))
	bob, err := c.BalanceOf(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(60), bob)
	assert.Zero(t, c.Vault())

	err = c.Release(ctx, "bob", 1)
	require.ErrorIs(t, err, port.ErrInsufficientFunds)
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	j := NewJournal()
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	camp, err := domain.NewCampaign(uuid.New(), "owner", created, time.Hour, 10)
	require.NoError(t, err)

	missing, err := j.GetCampaign(ctx, camp.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = j.Append(ctx, &domain.Entry{ID: uuid.New(), CampaignID: camp.ID, Kind: domain.KindDonation, Actor: "a", Amount: 1})
	require.ErrorIs(t, err, port.ErrCampaignNotFound)

	require.NoError(t, j.CreateCampaign(ctx, camp))
	require.ErrorIs(t, j.CreateCampaign(ctx, camp), port.ErrCampaignExists)

	for i := 0; i < 5; i++ {
		e := domain.Entry{ID: uuid.New(), CampaignID: camp.ID, Kind: domain.KindDonation, Actor: "a", Amount: 1, CreatedAt: created}
		require.NoError(t, j.Append(ctx, &e))
		assert.Equal(t, uint64(i+1), e.Seq)
	}

	page, err := j.ListEntries(ctx, camp.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(1), page[0].Seq)

	page, err = j.ListEntries(ctx, camp.ID, 3, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(4), page[0].Seq)

	loaded, err := j.GetCampaign(ctx, camp.ID)
	require.NoError(t, err)
	assert.Equal(t, camp.Deadline, loaded.Deadline)
	assert.Equal(t, camp.Owner, loaded.Owner)
	assert.Zero(t, loaded.Raised())
}
