package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-portal/config"
	"finance-portal/internal/handlers"
	"finance-portal/internal/middleware"
	"finance-portal/internal/models"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("finance portal listening")
	return r.Run(":" + port)
}

// SetupRoutes wires every resource under /v1. Role scoping mirrors the
// portal's route table in internal/access: each role-scoped group names its
// primary role(s) and RequireRoles admits ADMIN everywhere.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/auth/login", handlers.Login)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/auth/me", handlers.Me)
		protected.POST("/auth/change-password", handlers.ChangePassword)
		protected.GET("/profile", handlers.GetProfile)
		protected.GET("/navigation", handlers.GetNavigation)

		events := protected.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.GET("/:id", handlers.GetEvent)
			events.GET("/:id/budgets", handlers.ListEventBudgets)

			leads := events.Group("")
			leads.Use(middleware.RequireRoles(models.RoleEventTeamLead, models.RoleWorkshopTeamLead))
			{
				leads.POST("", handlers.CreateEvent)
				leads.PUT("/:id", handlers.UpdateEvent)
				leads.DELETE("/:id", handlers.DeleteEvent)
				leads.POST("/:id/budgets", handlers.SubmitEventBudgets)
			}

			finance := events.Group("")
			finance.Use(middleware.RequireRoles(models.RoleFinanceTeam))
			{
				finance.POST("/:id/budgets/approve", handlers.ApproveEventBudgets)
			}
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("/event/:id", handlers.ListEventExpenses)
			expenses.GET("/event/:id/summary", handlers.GetEventExpenseSummary)

			recorders := expenses.Group("")
			recorders.Use(middleware.RequireRoles(
				models.RoleFacilitiesTeam, models.RoleEventTeamLead, models.RoleWorkshopTeamLead,
			))
			{
				recorders.POST("", handlers.CreateExpense)
				recorders.PUT("/:id", handlers.UpdateExpense)
				recorders.DELETE("/:id", handlers.DeleteExpense)
				recorders.POST("/:id/receipt", handlers.UploadExpenseReceipt)
			}
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", handlers.ListCategories)

			finance := categories.Group("")
			finance.Use(middleware.RequireRoles(models.RoleFinanceTeam))
			{
				finance.POST("", handlers.CreateCategory)
				finance.PUT("/:id", handlers.UpdateCategory)
				finance.DELETE("/:id", handlers.DeleteCategory)
			}
		}

		products := protected.Group("/products")
		{
			products.GET("", handlers.ListProducts)

			managers := products.Group("")
			managers.Use(middleware.RequireRoles(models.RoleFinanceTeam, models.RoleFacilitiesTeam))
			{
				managers.POST("", handlers.CreateProduct)
				managers.PUT("/:id", handlers.UpdateProduct)
				managers.DELETE("/:id", handlers.DeleteProduct)
			}
		}

		venues := protected.Group("/venues")
		{
			venues.GET("", handlers.ListVenues)

			facilities := venues.Group("")
			facilities.Use(middleware.RequireRoles(models.RoleFacilitiesTeam))
			{
				facilities.POST("", handlers.CreateVenue)
				facilities.PUT("/:id", handlers.UpdateVenue)
				facilities.DELETE("/:id", handlers.DeleteVenue)
				facilities.POST("/:id/assign/:eventId", handlers.AssignVenue)
				facilities.GET("/events-for-assignment", handlers.ListEventsForAssignment)
			}
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", handlers.ListNotifications)
			notifications.PATCH("/:id/read", handlers.MarkNotificationRead)
			notifications.PATCH("/mark-all-read", handlers.MarkAllNotificationsRead)

			admin := notifications.Group("")
			admin.Use(middleware.RequireRoles())
			{
				admin.POST("", handlers.CreateNotification)
			}
		}

		reports := protected.Group("/reports")
		reports.Use(middleware.RequireRoles(
			models.RoleFinanceTeam, models.RoleEventCoordinator, models.RoleWorkshopCoordinator,
		))
		{
			reports.GET("/summary", handlers.GetSummaryReport)
			reports.GET("/summary/csv", handlers.ExportSummaryReportCSV)
			reports.GET("/event/:id/financial", handlers.GetEventFinancialReport)
			reports.GET("/event/:id/financial/csv", handlers.ExportEventFinancialReportCSV)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRoles())
		{
			admin.GET("/stats", handlers.GetAdminStats)
			admin.GET("/logs", handlers.ListActivityLogs)
		}

		users := protected.Group("/users")
		users.Use(middleware.RequireRoles())
		{
			users.GET("", handlers.ListUsers)
			users.POST("", handlers.CreateUser)
			users.PUT("/:id", handlers.UpdateUser)
			users.DELETE("/:id", handlers.DeactivateUser)
		}
	}
}
