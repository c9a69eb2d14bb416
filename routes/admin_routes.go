package routes

import (
	admin_auth "github.com/rajstories/Aadhaar-Intelligence-System/controllers/admin_controller/auth"
	"github.com/rajstories/Aadhaar-Intelligence-System/controllers/report_controller"
	"github.com/rajstories/Aadhaar-Intelligence-System/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up all admin routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	// Auth
	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Reports
		protected.POST("/reports", report_controller.GenerateReport)
		protected.GET("/reports", report_controller.GetReports)
		protected.GET("/reports/:id", report_controller.GetReportByID)
		protected.GET("/reports/:id/pdf", report_controller.DownloadReportPDF)
		protected.POST("/reports/:id/email", report_controller.EmailReport)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		superAdmin.DELETE("/reports/:id", report_controller.DeleteReport)
	}
}
