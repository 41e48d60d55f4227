package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-portal/internal/models"
)

func TestValidateDecision(t *testing.T) {
	pending := models.Event{Status: models.StatusPending}

	tests := []struct {
		name    string
		event   models.Event
		status  models.EventStatus
		remarks string
		wantErr error
	}{
		{"approve pending", pending, models.StatusApproved, "looks good", nil},
		{"reject pending", pending, models.StatusRejected, "over budget", nil},
		{"empty remarks", pending, models.StatusApproved, "", ErrRemarksRequired},
		{"whitespace remarks", pending, models.StatusRejected, "   \t", ErrRemarksRequired},
		{"decision must be terminal", pending, models.StatusPending, "why not", ErrInvalidDecision},
		{"completed is not a decision", pending, models.StatusCompleted, "done", ErrInvalidDecision},
		{"already approved", models.Event{Status: models.StatusApproved}, models.StatusApproved, "again", ErrEventNotPending},
		{"already rejected", models.Event{Status: models.StatusRejected}, models.StatusApproved, "retry", ErrEventNotPending},
		{"completed event", models.Event{Status: models.StatusCompleted}, models.StatusRejected, "late", ErrEventNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDecision(tt.event, tt.status, tt.remarks)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanSubmitBudgets(t *testing.T) {
	assert.True(t, CanSubmitBudgets(models.Event{Status: models.StatusPending}))
	assert.False(t, CanSubmitBudgets(models.Event{Status: models.StatusApproved}))
	assert.False(t, CanSubmitBudgets(models.Event{Status: models.StatusRejected}))
	assert.False(t, CanSubmitBudgets(models.Event{Status: models.StatusCompleted}))
}

func TestApplyApprovedAmounts(t *testing.T) {
	adjusted := uuid.New()
	untouched := uuid.New()
	budgets := []models.Budget{
		{CategoryID: adjusted, Amount: 1000},
		{CategoryID: untouched, Amount: 500},
	}

	ApplyApprovedAmounts(budgets, map[uuid.UUID]float64{adjusted: 900})

	require.NotNil(t, budgets[0].ApprovedAmount)
	require.NotNil(t, budgets[1].ApprovedAmount)
	assert.Equal(t, 900.0, *budgets[0].ApprovedAmount)
	// no adjustment given, so the requested amount is fixed as approved
	assert.Equal(t, 500.0, *budgets[1].ApprovedAmount)
}

func TestApplyApprovedAmountsNoAdjustments(t *testing.T) {
	budgets := []models.Budget{{CategoryID: uuid.New(), Amount: 750}}

	ApplyApprovedAmounts(budgets, nil)

	require.NotNil(t, budgets[0].ApprovedAmount)
	assert.Equal(t, 750.0, *budgets[0].ApprovedAmount)
}
