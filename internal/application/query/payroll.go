package query

import (
	"context"

	"github.com/alem-hub/university-hub/internal/domain/person"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// PAYROLL QUERY
// Details and payment of every registered person, in registration order.
// A payment failure is reported per entry and does not abort the listing.
// ══════════════════════════════════════════════════════════════════════════════

// PayrollQuery optionally filters by family.
type PayrollQuery struct {
	// Family limits the listing; empty lists everyone.
	Family person.Family
}

// PayrollEntryDTO is one person in the payroll.
type PayrollEntryDTO struct {
	PersonID string      `json:"person_id"`
	Name     string      `json:"name"`
	Kind     person.Kind `json:"kind"`
	Details  string      `json:"details"`
	Payment  float64     `json:"payment"`

	// Err is the payment error, nil when the payment was computed.
	Err error `json:"-"`
}

// PayrollResult is the full listing.
type PayrollResult struct {
	Entries []PayrollEntryDTO `json:"entries"`

	// Total sums the computed payments.
	Total float64 `json:"total"`
}

// PayrollHandler handles PayrollQuery.
type PayrollHandler struct {
	people person.Repository
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(people person.Repository) *PayrollHandler {
	return &PayrollHandler{people: people}
}

// Handle executes the query.
func (h *PayrollHandler) Handle(ctx context.Context, q PayrollQuery) (*PayrollResult, error) {
	people, err := h.people.List(ctx)
	if err != nil {
		return nil, wrap("payroll", err)
	}

	result := &PayrollResult{Entries: make([]PayrollEntryDTO, 0, len(people))}
	for _, p := range people {
		if q.Family != "" && p.Family() != q.Family {
			continue
		}

		entry := PayrollEntryDTO{
			PersonID: p.ID,
			Name:     p.Name,
			Kind:     p.Kind,
			Details:  p.DisplayDetails(),
		}
		entry.Payment, entry.Err = p.CalculatePayment()
		if entry.Err == nil {
			result.Total += entry.Payment
		}
		result.Entries = append(result.Entries, entry)
	}

	logger.FromContext(ctx).Debug("payroll computed",
		logger.Operation("payroll"), logger.RecordCount(len(result.Entries)))
	return result, nil
}
