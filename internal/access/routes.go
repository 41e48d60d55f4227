// Package access holds the portal's page-level permission model: which
// roles may open which pages, which dashboard variant the root page shows
// and which sidebar entries each role sees. Handlers and middleware consult
// these tables so the API and the navigation payload can never disagree.
package access

import "finance-portal/internal/models"

// Route maps a portal path to the page component rendered there and the
// roles allowed to open it. A nil AllowedRoles means any authenticated
// role. Every role-scoped route lists ADMIN alongside its primary role;
// ADMIN can reach everything.
type Route struct {
	Path         string        `json:"path"`
	Component    string        `json:"component"`
	AllowedRoles []models.Role `json:"allowedRoles,omitempty"`
}

var routes = []Route{
	{Path: "/", Component: "Dashboard"},
	{Path: "/profile", Component: "Profile"},
	{Path: "/notifications", Component: "Notifications"},

	{Path: "/admin/users", Component: "AdminUsers", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/events", Component: "AdminEvents", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/workshops", Component: "AdminWorkshops", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/budgets", Component: "AdminBudgets", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/expenses", Component: "AdminExpenses", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/products", Component: "AdminProducts", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/categories", Component: "AdminCategories", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/venues", Component: "AdminVenues", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/reports", Component: "AdminReports", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/notifications", Component: "AdminNotifications", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/logs", Component: "AdminLogs", AllowedRoles: []models.Role{models.RoleAdmin}},

	{Path: "/finance/events", Component: "FinanceEvents", AllowedRoles: []models.Role{models.RoleFinanceTeam, models.RoleAdmin}},
	{Path: "/finance/budgets", Component: "FinanceBudgets", AllowedRoles: []models.Role{models.RoleFinanceTeam, models.RoleAdmin}},
	{Path: "/finance/expenses", Component: "FinanceExpenses", AllowedRoles: []models.Role{models.RoleFinanceTeam, models.RoleAdmin}},
	{Path: "/finance/products", Component: "FinanceProducts", AllowedRoles: []models.Role{models.RoleFinanceTeam, models.RoleAdmin}},
	{Path: "/finance/categories", Component: "FinanceCategories", AllowedRoles: []models.Role{models.RoleFinanceTeam, models.RoleAdmin}},
	{Path: "/finance/reports", Component: "FinanceReports", AllowedRoles: []models.Role{models.RoleFinanceTeam, models.RoleAdmin}},

	{Path: "/event-leads/events", Component: "EventLeadEvents", AllowedRoles: []models.Role{models.RoleEventTeamLead, models.RoleAdmin}},
	{Path: "/event-leads/events/create", Component: "CreateEvent", AllowedRoles: []models.Role{models.RoleEventTeamLead, models.RoleAdmin}},
	{Path: "/event-leads/budgets", Component: "EventLeadBudgets", AllowedRoles: []models.Role{models.RoleEventTeamLead, models.RoleAdmin}},
	{Path: "/event-leads/expenses", Component: "EventLeadExpenses", AllowedRoles: []models.Role{models.RoleEventTeamLead, models.RoleAdmin}},

	{Path: "/workshop-leads/workshops", Component: "WorkshopLeadWorkshops", AllowedRoles: []models.Role{models.RoleWorkshopTeamLead, models.RoleAdmin}},
	{Path: "/workshop-leads/workshops/create", Component: "CreateWorkshop", AllowedRoles: []models.Role{models.RoleWorkshopTeamLead, models.RoleAdmin}},
	{Path: "/workshop-leads/budgets", Component: "WorkshopLeadBudgets", AllowedRoles: []models.Role{models.RoleWorkshopTeamLead, models.RoleAdmin}},
	{Path: "/workshop-leads/expenses", Component: "WorkshopLeadExpenses", AllowedRoles: []models.Role{models.RoleWorkshopTeamLead, models.RoleAdmin}},

	{Path: "/facilities/events", Component: "FacilitiesEvents", AllowedRoles: []models.Role{models.RoleFacilitiesTeam, models.RoleAdmin}},
	{Path: "/facilities/expenses", Component: "FacilitiesExpenses", AllowedRoles: []models.Role{models.RoleFacilitiesTeam, models.RoleAdmin}},
	{Path: "/facilities/products", Component: "FacilitiesProducts", AllowedRoles: []models.Role{models.RoleFacilitiesTeam, models.RoleAdmin}},
	{Path: "/facilities/venues", Component: "FacilitiesVenues", AllowedRoles: []models.Role{models.RoleFacilitiesTeam, models.RoleAdmin}},

	{Path: "/coordinator/events", Component: "CoordinatorEvents", AllowedRoles: []models.Role{models.RoleEventCoordinator, models.RoleWorkshopCoordinator, models.RoleAdmin}},
	{Path: "/coordinator/reports", Component: "CoordinatorReports", AllowedRoles: []models.Role{models.RoleEventCoordinator, models.RoleWorkshopCoordinator, models.RoleAdmin}},
}

// Routes returns the full route table. Callers must not mutate it.
func Routes() []Route {
	return routes
}

type DecisionKind int

const (
	DenyUnauthenticated DecisionKind = iota
	DenyForbidden
	NotFound
	Allow
)

type Decision struct {
	Kind      DecisionKind
	Component string
}

// Resolve decides what happens when a user with the given role opens a
// path. A nil role means no authenticated session. Unknown paths are left
// to the client's catch-all.
func Resolve(role *models.Role, path string) Decision {
	var route *Route
	for i := range routes {
		if routes[i].Path == path {
			route = &routes[i]
			break
		}
	}
	if route == nil {
		return Decision{Kind: NotFound}
	}
	if role == nil {
		return Decision{Kind: DenyUnauthenticated}
	}
	if route.AllowedRoles == nil {
		return Decision{Kind: Allow, Component: route.Component}
	}
	for _, allowed := range route.AllowedRoles {
		if *role == allowed {
			return Decision{Kind: Allow, Component: route.Component}
		}
	}
	return Decision{Kind: DenyForbidden}
}

// AllowedPaths returns every path the role may open, in table order.
func AllowedPaths(role models.Role) []string {
	var paths []string
	for _, route := range routes {
		if decision := Resolve(&role, route.Path); decision.Kind == Allow {
			paths = append(paths, route.Path)
		}
	}
	return paths
}
