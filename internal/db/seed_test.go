package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

type fakeCrediter struct {
	credited map[domain.ActorID]domain.Amount
	failOn   domain.ActorID
}

func (f *fakeCrediter) Credit(_ context.Context, actor domain.ActorID, amount domain.Amount) error {
	if actor == f.failOn {
		return errors.New("boom")
	}
	f.credited[actor] += amount
	return nil
}

func TestSeed(t *testing.T) {
	f := &fakeCrediter{credited: map[domain.ActorID]domain.Amount{}}
	require.NoError(t, Seed(context.Background(), f, []domain.ActorID{"alice", "", "bob"}, 10))
	assert.Equal(t, map[domain.ActorID]domain.Amount{"alice": 10, "bob": 10}, f.credited)

	f.failOn = "bob"
	err := Seed(context.Background(), f, []domain.ActorID{"alice", "bob"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credit bob")
}
