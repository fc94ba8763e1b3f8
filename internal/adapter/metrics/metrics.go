package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const namespace = "crowdfund"

// CampaignUseCase decorates a port.CampaignUseCase with Prometheus
// instrumentation. Ledger gauges are computed from a snapshot on every
// scrape.
type CampaignUseCase struct {
	next port.CampaignUseCase

	operations  *prometheus.CounterVec
	transferred *prometheus.CounterVec
	raised      prometheus.GaugeFunc
	withdrawn   prometheus.GaugeFunc
	goal        prometheus.GaugeFunc
	donors      prometheus.GaugeFunc
	finished    prometheus.GaugeFunc
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase wraps next and registers its collectors with reg.
func NewCampaignUseCase(next port.CampaignUseCase, reg prometheus.Registerer) *CampaignUseCase {
	m := &CampaignUseCase{
		next: next,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Campaign operations by kind and result.",
		}, []string{"operation", "result"}),
		transferred: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transferred_units_total",
			Help:      "Funds moved through custody in the smallest currency unit.",
		}, []string{"operation"}),
	}
	m.raised = m.gauge("raised_units", "Sum of all donor balances.", func(s port.CampaignSnapshot) float64 {
		return float64(s.Raised)
	})
	m.withdrawn = m.gauge("withdrawn_units", "Funds already released to the owner.", func(s port.CampaignSnapshot) float64 {
		return float64(s.Withdrawn)
	})
	m.goal = m.gauge("goal_units", "Funding goal.", func(s port.CampaignSnapshot) float64 {
		return float64(s.Goal)
	})
	m.donors = m.gauge("donors", "Actors holding a non-zero balance.", func(s port.CampaignSnapshot) float64 {
		return float64(s.Donors)
	})
	m.finished = m.gauge("finished", "1 once the deadline has passed.", func(s port.CampaignSnapshot) float64 {
		if s.Finished {
			return 1
		}
		return 0
	})

	reg.MustRegister(m.operations, m.transferred, m.raised, m.withdrawn, m.goal, m.donors, m.finished)
	return m
}

func (m *CampaignUseCase) gauge(name, help string, value func(port.CampaignSnapshot) float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "campaign_" + name,
		Help:      help,
	}, func() float64 {
		return value(m.next.Snapshot())
	})
}

// Donate forwards to the wrapped use case.
func (m *CampaignUseCase) Donate(ctx context.Context, caller domain.ActorID, amount domain.Amount) (domain.Amount, error) {
	balance, err := m.next.Donate(ctx, caller, amount)
	m.observe("donate", amount, err)
	return balance, err
}

// Refund forwards to the wrapped use case.
func (m *CampaignUseCase) Refund(ctx context.Context, caller domain.ActorID) (domain.Amount, error) {
	amount, err := m.next.Refund(ctx, caller)
	m.observe("refund", amount, err)
	return amount, err
}

// Withdraw forwards to the wrapped use case.
func (m *CampaignUseCase) Withdraw(ctx context.Context, caller domain.ActorID) (domain.Amount, error) {
	amount, err := m.next.Withdraw(ctx, caller)
	m.observe("withdraw", amount, err)
	return amount, err
}

// IsFinished forwards to the wrapped use case.
func (m *CampaignUseCase) IsFinished() bool { return m.next.IsFinished() }

// Snapshot forwards to the wrapped use case.
func (m *CampaignUseCase) Snapshot() port.CampaignSnapshot { return m.next.Snapshot() }

// BalanceOf forwards to the wrapped use case.
func (m *CampaignUseCase) BalanceOf(actor domain.ActorID) domain.Amount {
	return m.next.BalanceOf(actor)
}

func (m *CampaignUseCase) observe(op string, amount domain.Amount, err error) {
	m.operations.WithLabelValues(op, Result(err)).Inc()
	if err == nil {
		m.transferred.WithLabelValues(op).Add(float64(amount))
	}
}

// Result maps an operation error to a low-cardinality label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrCampaignClosed):
		return "campaign_closed"
	case errors.Is(err, domain.ErrCampaignStillOpen):
		return "campaign_still_open"
	case errors.Is(err, domain.ErrGoalReached):
		return "goal_reached"
	case errors.Is(err, domain.ErrGoalNotReached):
		return "goal_not_reached"
	case errors.Is(err, domain.ErrNoBalance):
		return "no_balance"
	case errors.Is(err, domain.ErrNotOwner):
		return "not_owner"
	case errors.Is(err, domain.ErrInsufficientInput):
		return "insufficient_input"
	case errors.Is(err, domain.ErrAmountOverflow):
		return "amount_overflow"
	case errors.Is(err, domain.ErrNothingToWithdraw):
		return "nothing_to_withdraw"
	case errors.Is(err, port.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, port.ErrTransferFailed):
		return "transfer_failed"
	case errors.Is(err, port.ErrJournalBehind):
		return "journal_behind"
	default:
		return "error"
	}
}
