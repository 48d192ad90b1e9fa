package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/api/handlers"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/api/middleware"
)

type Deps struct {
	JWTSecret      string
	Redis          *redis.Client // nil disables rate limiting
	RatePerMinute  int
	Users          *handlers.UserHandler
	Consultants    *handlers.ConsultantHandler
	Vendors        *handlers.VendorHandler
	Submissions    *handlers.SubmissionHandler
	Interviews     *handlers.InterviewHandler
	Analytics      *handlers.AnalyticsHandler
	Reports        *handlers.ReportHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/api")
	auth.Use(middleware.JWTAuth(d.JWTSecret))
	if d.Redis != nil {
		auth.Use(middleware.RateLimit(d.Redis, d.RatePerMinute))
	}

	// User management is admin only.
	users := auth.Group("/users", middleware.RequireAdmin())
	users.POST("", d.Users.Create)
	users.GET("", d.Users.List)
	users.GET("/:id", d.Users.Get)
	users.PUT("/:id/role", d.Users.UpdateRole)
	users.DELETE("/:id", d.Users.Delete)

	auth.POST("/consultants", middleware.RequireAdmin(), d.Consultants.Create)
	auth.GET("/consultants", d.Consultants.List)
	auth.GET("/consultants/:id", d.Consultants.Get)
	auth.PUT("/consultants/:id", d.Consultants.Update)
	auth.DELETE("/consultants/:id", d.Consultants.Delete)
	auth.POST("/consultants/:id/resume", d.Consultants.UploadResume)
	auth.GET("/consultants/:id/resume", d.Consultants.GetResume)

	auth.POST("/vendors", d.Vendors.Create)
	auth.GET("/vendors", d.Vendors.List)
	auth.GET("/vendors/:id", d.Vendors.Get)
	auth.PUT("/vendors/:id", d.Vendors.Update)
	auth.DELETE("/vendors/:id", d.Vendors.Delete)

	auth.POST("/submissions", d.Submissions.Create)
	auth.GET("/submissions", d.Submissions.List)
	auth.GET("/submissions/:id", d.Submissions.Get)
	auth.PUT("/submissions/:id", d.Submissions.Update)
	auth.DELETE("/submissions/:id", d.Submissions.Delete)
	auth.GET("/submissions/:id/interviews", d.Interviews.ListBySubmission)

	auth.POST("/interviews", d.Interviews.Create)
	auth.GET("/interviews/upcoming", d.Interviews.ListUpcoming)
	auth.GET("/interviews/:id", d.Interviews.Get)
	auth.PUT("/interviews/:id", d.Interviews.Update)
	auth.DELETE("/interviews/:id", d.Interviews.Delete)

	analytics := auth.Group("/analytics")
	analytics.GET("/dashboard", d.Analytics.Dashboard)
	analytics.GET("/consultants", d.Analytics.Consultants)
	analytics.GET("/recruiters", d.Analytics.Recruiters)
	analytics.GET("/pipeline", d.Analytics.Pipeline)
	analytics.GET("/vendors", d.Analytics.Vendors)
	analytics.GET("/follow-ups", d.Analytics.FollowUps)

	reports := auth.Group("/reports", middleware.RequireAdmin())
	reports.POST("/trigger", d.Reports.Trigger)
	reports.GET("/runs", d.Reports.Runs)
}
