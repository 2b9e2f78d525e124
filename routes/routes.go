package routes

import (
	"github.com/georgesofianosgr/care-track/controllers"
	"github.com/georgesofianosgr/care-track/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(
	log *zap.Logger,
	authCtl *controllers.AuthController,
	activityCtl *controllers.ActivityController,
	entryCtl *controllers.EntryController,
	statsCtl *controllers.StatsController,
	authMW gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/session", authCtl.Session)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(authMW)
	{
		api.GET("/activities", activityCtl.List)
		api.POST("/activities", activityCtl.Create)
		api.GET("/activities/:id", activityCtl.Get)
		api.PUT("/activities/:id", activityCtl.Update)
		api.DELETE("/activities/:id", activityCtl.Delete)

		api.GET("/entries", entryCtl.List)
		api.POST("/entries/toggle", entryCtl.Toggle)

		api.GET("/stats/weekly", statsCtl.Weekly)
		api.GET("/stats/monthly", statsCtl.Monthly)
	}

	return r
}
