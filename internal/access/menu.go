package access

import "finance-portal/internal/models"

// MenuItem is one sidebar entry. Icon names match the client's icon set.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// MenuFor returns the sidebar for a role. Every list starts with Dashboard
// and ends with Profile, and only contains paths the same role passes
// Resolve for.
func MenuFor(role models.Role) []MenuItem {
	base := []MenuItem{
		{Icon: "home", Label: "Dashboard", Path: "/"},
	}

	switch role {
	case models.RoleAdmin:
		return append(base,
			MenuItem{Icon: "users", Label: "Users", Path: "/admin/users"},
			MenuItem{Icon: "calendar", Label: "Events", Path: "/admin/events"},
			MenuItem{Icon: "calendar", Label: "Workshops", Path: "/admin/workshops"},
			MenuItem{Icon: "dollar-sign", Label: "Budgets", Path: "/admin/budgets"},
			MenuItem{Icon: "receipt", Label: "Expenses", Path: "/admin/expenses"},
			MenuItem{Icon: "package", Label: "Product Catalog", Path: "/admin/products"},
			MenuItem{Icon: "settings", Label: "Budget Categories", Path: "/admin/categories"},
			MenuItem{Icon: "map-pin", Label: "Venues", Path: "/admin/venues"},
			MenuItem{Icon: "file-text", Label: "Reports", Path: "/admin/reports"},
			MenuItem{Icon: "bell", Label: "Notifications", Path: "/admin/notifications"},
			MenuItem{Icon: "shield", Label: "Admin Logs", Path: "/admin/logs"},
			MenuItem{Icon: "user", Label: "Profile", Path: "/profile"},
		)
	case models.RoleFinanceTeam:
		return append(base,
			MenuItem{Icon: "calendar", Label: "Events/Workshops", Path: "/finance/events"},
			MenuItem{Icon: "dollar-sign", Label: "Budget Review", Path: "/finance/budgets"},
			MenuItem{Icon: "receipt", Label: "Expenses", Path: "/finance/expenses"},
			MenuItem{Icon: "package", Label: "Product Catalog", Path: "/finance/products"},
			MenuItem{Icon: "settings", Label: "Budget Categories", Path: "/finance/categories"},
			MenuItem{Icon: "file-text", Label: "Reports", Path: "/finance/reports"},
			MenuItem{Icon: "bell", Label: "Notifications", Path: "/notifications"},
			MenuItem{Icon: "user", Label: "Profile", Path: "/profile"},
		)
	case models.RoleEventTeamLead:
		return append(base,
			MenuItem{Icon: "calendar", Label: "My Events", Path: "/event-leads/events"},
			MenuItem{Icon: "dollar-sign", Label: "Budget Planning", Path: "/event-leads/budgets"},
			MenuItem{Icon: "receipt", Label: "Expense Tracking", Path: "/event-leads/expenses"},
			MenuItem{Icon: "bell", Label: "Notifications", Path: "/notifications"},
			MenuItem{Icon: "user", Label: "Profile", Path: "/profile"},
		)
	case models.RoleWorkshopTeamLead:
		return append(base,
			MenuItem{Icon: "calendar", Label: "My Workshops", Path: "/workshop-leads/workshops"},
			MenuItem{Icon: "dollar-sign", Label: "Budget Planning", Path: "/workshop-leads/budgets"},
			MenuItem{Icon: "receipt", Label: "Expense Tracking", Path: "/workshop-leads/expenses"},
			MenuItem{Icon: "bell", Label: "Notifications", Path: "/notifications"},
			MenuItem{Icon: "user", Label: "Profile", Path: "/profile"},
		)
	case models.RoleFacilitiesTeam:
		return append(base,
			MenuItem{Icon: "calendar", Label: "Approved Events", Path: "/facilities/events"},
			MenuItem{Icon: "receipt", Label: "Add Expenses", Path: "/facilities/expenses"},
			MenuItem{Icon: "package", Label: "Product Catalog", Path: "/facilities/products"},
			MenuItem{Icon: "map-pin", Label: "Venue Management", Path: "/facilities/venues"},
			MenuItem{Icon: "bell", Label: "Notifications", Path: "/notifications"},
			MenuItem{Icon: "user", Label: "Profile", Path: "/profile"},
		)
	case models.RoleEventCoordinator, models.RoleWorkshopCoordinator:
		return append(base,
			MenuItem{Icon: "calendar", Label: "My Events/Workshops", Path: "/coordinator/events"},
			MenuItem{Icon: "bar-chart", Label: "Expense Summary", Path: "/coordinator/reports"},
			MenuItem{Icon: "bell", Label: "Notifications", Path: "/notifications"},
			MenuItem{Icon: "user", Label: "Profile", Path: "/profile"},
		)
	default:
		return base
	}
}
