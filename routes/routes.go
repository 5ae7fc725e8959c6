package routes

import (
	"MindNestGo/controllers"
	"MindNestGo/middleware"
	"MindNestGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, assessService *services.AssessService, mockMode bool) {
	healthController := &controllers.HealthController{MockMode: mockMode}
	assessmentController := controllers.NewAssessmentController(assessService)
	historyController := &controllers.HistoryController{}
	syncController := &controllers.SyncController{}
	authController := &controllers.AuthController{}
	healingController := &controllers.HealingController{}
	adminController := &controllers.AdminController{}

	// 健康检查
	r.GET("/", healthController.Root)
	r.GET("/health", healthController.Health)

	// 公开路由（无需认证，供MR客户端直接调用）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/device", authController.DeviceLogin)
		public.POST("/assess", assessmentController.Assess)
		public.GET("/tasks", assessmentController.GetTasks)
		public.GET("/expressions", assessmentController.GetExpressions)
		public.GET("/history/:user_id", historyController.GetHistory)
		public.GET("/mr_sync/:user_id", syncController.MRSync)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/healing/complete", healingController.CompleteHealing)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.GET("/stats", adminController.GetStats)
	}
}
