package access

import "finance-portal/internal/models"

// DashboardWelcome is rendered for a missing or unrecognized role.
const DashboardWelcome = "WelcomeDashboard"

// DashboardFor picks the dashboard variant shown at the root path. The
// mapping is total over the role enumeration; both coordinator roles share
// one variant and anything else falls back to the generic welcome view.
func DashboardFor(role *models.Role) string {
	if role == nil {
		return DashboardWelcome
	}
	switch *role {
	case models.RoleAdmin:
		return "AdminDashboard"
	case models.RoleEventTeamLead:
		return "EventLeadDashboard"
	case models.RoleWorkshopTeamLead:
		return "WorkshopLeadDashboard"
	case models.RoleFinanceTeam:
		return "FinanceDashboard"
	case models.RoleFacilitiesTeam:
		return "FacilitiesDashboard"
	case models.RoleEventCoordinator, models.RoleWorkshopCoordinator:
		return "CoordinatorDashboard"
	default:
		return DashboardWelcome
	}
}
