package finance

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"finance-portal/internal/models"
)

var (
	ErrEventNotPending  = errors.New("event is not pending")
	ErrEventNotApproved = errors.New("event is not approved")
	ErrRemarksRequired  = errors.New("remarks are required")
	ErrInvalidDecision  = errors.New("decision must be APPROVED or REJECTED")
)

// CanSubmitBudgets reports whether the budget-line set of an event may
// still be replaced. Only PENDING events accept submissions; once a
// decision lands the lines are read-only.
func CanSubmitBudgets(event models.Event) bool {
	return event.Status == models.StatusPending
}

// CanDecide reports whether an approval decision may be taken. PENDING is
// the only legal source state; APPROVED, REJECTED and COMPLETED events are
// never offered the transition again.
func CanDecide(event models.Event) bool {
	return event.Status == models.StatusPending
}

// ValidateDecision gates an approve/reject request before anything is
// written: the target status must be one of the two decision states,
// remarks must carry non-whitespace content, and the event must still be
// PENDING.
func ValidateDecision(event models.Event, status models.EventStatus, remarks string) error {
	if status != models.StatusApproved && status != models.StatusRejected {
		return ErrInvalidDecision
	}
	if strings.TrimSpace(remarks) == "" {
		return ErrRemarksRequired
	}
	if !CanDecide(event) {
		return ErrEventNotPending
	}
	return nil
}

// ApplyApprovedAmounts fixes each line's approved amount: the reviewer's
// adjustment when one was given for the category, otherwise the requested
// amount. After this no line is left with a nil ApprovedAmount, so
// downstream totals never need a null check.
func ApplyApprovedAmounts(budgets []models.Budget, adjustments map[uuid.UUID]float64) {
	for i := range budgets {
		amount := budgets[i].Amount
		if adjusted, ok := adjustments[budgets[i].CategoryID]; ok {
			amount = adjusted
		}
		budgets[i].ApprovedAmount = &amount
	}
}
