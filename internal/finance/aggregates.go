// Package finance holds the budget approval workflow rules: status
// transitions, decision validation and the derived aggregates. Everything
// here is pure and re-derived on every call; handlers own persistence.
package finance

import "finance-portal/internal/models"

// TotalRequested sums the requested amounts across budget lines.
func TotalRequested(budgets []models.Budget) float64 {
	var total float64
	for _, budget := range budgets {
		total += budget.Amount
	}
	return total
}

// TotalApproved sums approved amounts, falling back to the requested
// amount for lines without a decision yet.
func TotalApproved(budgets []models.Budget) float64 {
	var total float64
	for _, budget := range budgets {
		if budget.ApprovedAmount != nil {
			total += *budget.ApprovedAmount
		} else {
			total += budget.Amount
		}
	}
	return total
}

// TotalSponsor sums sponsor contributions across budget lines.
func TotalSponsor(budgets []models.Budget) float64 {
	var total float64
	for _, budget := range budgets {
		total += budget.SponsorContribution
	}
	return total
}

// NetRequest is the requested total minus sponsor contributions.
func NetRequest(budgets []models.Budget) float64 {
	return TotalRequested(budgets) - TotalSponsor(budgets)
}

// TotalExpenses sums recorded expense amounts.
func TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}
	return total
}

// Remaining is the approved total minus spend. It goes negative when
// expenses exceed the approved budget; recording is not blocked on that.
func Remaining(budgets []models.Budget, expenses []models.Expense) float64 {
	return TotalApproved(budgets) - TotalExpenses(expenses)
}

// UsagePercentage is spend over approved budget as a percentage. Zero
// approved budget yields 0, never a division by zero.
func UsagePercentage(budgets []models.Budget, expenses []models.Expense) float64 {
	approved := TotalApproved(budgets)
	if approved == 0 {
		return 0
	}
	return TotalExpenses(expenses) / approved * 100
}
