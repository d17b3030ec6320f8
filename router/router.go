package router

import (
	"log"

	"wordnest/config"
	"wordnest/controllers"
	"wordnest/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes,
// authenticated routes, then role-gated groups (parent, admin).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/users/student", Logger(), controllers.RegisterStudent)
	api.POST("/users/parent", Logger(), controllers.RegisterParent)
	api.POST("/login", Logger(), controllers.Login)
	api.POST("/refresh", Logger(), controllers.Refresh)
	api.POST("/logout", Logger(), controllers.Logout)
	api.POST("/password/forgot", Logger(), controllers.ForgotPassword)
	api.POST("/password/check-token", Logger(), controllers.CheckResetToken)
	api.POST("/password/reset", Logger(), controllers.ResetPassword)
	api.POST("/verify-email/:code", Logger(), controllers.VerifyEmailByCode)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/me", Logger(), controllers.Me)
	auth.PUT("/me", Logger(), controllers.UpdateMe)
	auth.POST("/user/resend-code", Logger(), controllers.ResendVerificationCode)

	auth.GET("/notifications", Logger(), controllers.GetNotifications)
	auth.POST("/notifications/:id/read", Logger(), controllers.MarkNotificationRead)

	// Vocabulary content (read)
	auth.GET("/word-sets", Logger(), controllers.GetWordSets)
	auth.GET("/word-sets/:id", Logger(), controllers.GetWordSetByID)
	auth.GET("/word-sets/:id/words", Logger(), controllers.GetWordsBySetID)
	auth.GET("/words/:id", Logger(), controllers.GetWordByID)

	// Daily challenge
	auth.POST("/challenges/daily", Logger(), controllers.SubmitDailyChallenge)
	auth.GET("/challenges/today", Logger(), controllers.GetTodayChallenge)
	auth.GET("/challenges/streak", Logger(), controllers.GetStreak)
	auth.GET("/challenges/history", Logger(), controllers.GetChallengeHistory)

	// Linking (student side)
	auth.POST("/link-requests/:code/accept", Logger(), controllers.AcceptLinkRequest)

	// Dashboards: per-student access is checked in the controller
	// (parent of the student, admin, or the student itself).
	auth.GET("/students/:id/dashboard", Logger(), controllers.GetStudentDashboard)

	// Parent routes
	parent := auth.Group("")
	parent.Use(ParentOnly())
	parent.POST("/link-requests", Logger(), controllers.CreateLinkRequest)
	parent.GET("/students", Logger(), controllers.GetLinkedStudents)

	// Assisted password reset: parents for their students, admins for
	// anyone but themselves. Role rules live in the auth package.
	auth.POST("/users/:id/password", Logger(), controllers.ResetUserPassword)

	// Admin routes
	admin := auth.Group("")
	admin.Use(Adminizer())

	admin.GET("/users", Logger(), controllers.GetUsers)
	admin.PUT("/users/:id/role", Logger(), controllers.UpdateUserRole)
	admin.DELETE("/users/:id", Logger(), controllers.DeleteUser)

	admin.POST("/word-sets", Logger(), controllers.CreateWordSet)
	admin.PUT("/word-sets/:id", Logger(), controllers.UpdateWordSet)
	admin.DELETE("/word-sets/:id", Logger(), controllers.DeleteWordSet)

	admin.POST("/words", Logger(), controllers.CreateWord)
	admin.PUT("/words/:id", Logger(), controllers.UpdateWord)
	admin.DELETE("/words/:id", Logger(), controllers.DeleteWord)

	log.Printf("Routes initialized")
}
