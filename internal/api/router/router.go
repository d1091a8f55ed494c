package router

import (
	"btube-go/internal/api/handler"
	"btube-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	engagementHandler *handler.EngagementHandler,
	payoutHandler *handler.PayoutHandler,
	settingsHandler *handler.SettingsHandler,
	searchHandler *handler.SearchHandler,
	userFetcher middleware.UserFetcher,
) {
	v1 := r.Group("/api/v1")

	// 登录态链：Token 校验 + 加载完整用户快照
	authChain := []gin.HandlerFunc{middleware.AuthRequired(), middleware.LoadUser(userFetcher)}

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// --- 站点信息（公开） ---
	v1.GET("/site", settingsHandler.Site)

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		// 公开接口（不需要登录）
		videos.GET("/feed", videoHandler.Feed)
		videos.GET("/trending", videoHandler.Trending)

		// 详情公开，但带 Token 时按作者/管理员视角放行未过审视频
		videos.GET("/:id", middleware.OptionalUser(userFetcher), videoHandler.GetDetail)

		// 需要登录的接口
		videosAuth := videos.Group("", authChain...)
		{
			videosAuth.POST("/upload", videoHandler.Upload)
			videosAuth.GET("/my/dashboard", videoHandler.Dashboard)

			videosAuth.POST("/:id/view", engagementHandler.RegisterView)
			videosAuth.POST("/:id/like", engagementHandler.Like)
			videosAuth.POST("/:id/comment", engagementHandler.Comment)
		}
	}

	// --- 提现模块 ---
	payouts := v1.Group("/payouts", authChain...)
	{
		payouts.POST("", payoutHandler.Submit)
		payouts.GET("/my", payoutHandler.ListMine)
	}

	// --- 搜索模块 ---
	v1.GET("/search/videos", searchHandler.SearchVideos)

	// --- 管理模块 ---
	admin := v1.Group("/admin", append(authChain, middleware.AdminRequired())...)
	{
		admin.GET("/videos/pending", videoHandler.ListPending)
		admin.POST("/videos/:id/approve", videoHandler.Approve)
		admin.DELETE("/videos/:id", videoHandler.Remove)

		admin.GET("/payouts", payoutHandler.ListAll)
		admin.POST("/payouts/:id/settle", payoutHandler.Settle)

		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)
	}
}
