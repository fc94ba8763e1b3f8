package metrics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/clock"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

func newInstrumented(t *testing.T) (*CampaignUseCase, *clock.Manual) {
	t.Helper()
	ctx := context.Background()
	clk := clock.NewManual(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	journal := memory.NewJournal()
	p := usecase.CampaignParams{ID: uuid.New(), Owner: "owner", Duration: time.Hour, Goal: 100}
	custody := memory.NewCustody(domain.VaultActor(p.ID))
	custody.Fund("a", 1000)

	c, err := usecase.LoadCampaign(ctx, journal, clk, p)
	require.NoError(t, err)
	uc := usecase.NewCampaignUseCase(c, clk, custody, journal, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewCampaignUseCase(uc, prometheus.NewRegistry()), clk
}

func TestOperationsAreCounted(t *testing.T) {
	m, clk := newInstrumented(t)
	ctx := context.Background()

	_, err := m.Donate(ctx, "a", 40)
	require.NoError(t, err)
	_, err = m.Donate(ctx, "a", 0)
	require.Error(t, err)
	_, err = m.Withdraw(ctx, "owner")
	require.Error(t, err)

	clk.Advance(time.Hour)
	_, err = m.Refund(ctx, "a")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("donate", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("donate", "insufficient_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("withdraw", "goal_not_reached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("refund", "ok")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.transferred.WithLabelValues("donate")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.transferred.WithLabelValues("refund")))
}

func TestGaugesFollowSnapshot(t *testing.T) {
	m, clk := newInstrumented(t)
	ctx := context.Background()

	assert.Equal(t, 100.0, testutil.ToFloat64(m.goal))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.finished))

	_, err := m.Donate(ctx, "a", 60)
	require.NoError(t, err)
	assert.Equal(t, 60.0, testutil.ToFloat64(m.raised))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.donors))

	clk.Advance(time.Hour)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.finished))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.withdrawn))
}

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: "ok"},
		{err: domain.ErrCampaignClosed, want: "campaign_closed"},
		{err: domain.ErrNotOwner, want: "not_owner"},
		{err: port.ErrTransferFailed, want: "transfer_failed"},
		{err: fmt.Errorf("refund: %w", port.ErrJournalBehind), want: "journal_behind"},
		{err: fmt.Errorf("wrapped: %w", domain.ErrNoBalance), want: "no_balance"},
		{err: io.EOF, want: "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Result(tt.err), "%v", tt.err)
	}
}
