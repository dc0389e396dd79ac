package route

import (
	"github.com/gin-gonic/gin"

	"cafedir/controller"
	"cafedir/utils"
)

// CafeRoutes wires the cafe-directory API onto the router.
func CafeRoutes(router *gin.Engine, ctrl *controller.CafeController) {
	router.GET("/", ctrl.Home)
	router.GET("/random", ctrl.RandomCafe)
	router.GET("/all", ctrl.AllCafes)
	router.GET("/search_loc", ctrl.SearchByLocation)
	router.GET("/search_wifi", ctrl.SearchByWifi)
	router.GET("/add", ctrl.AddCafe)
	router.POST("/add", ctrl.AddCafe)
	router.POST("/add/excel", ctrl.BulkAddCafes)
	router.PATCH("/update-price/:id", ctrl.UpdatePrice)
	router.DELETE("/report_closed/:id", ctrl.ReportClosed)
}

// AuthRoutes wires the registration/login demo onto the router. The
// protected routes sit behind the session middleware.
func AuthRoutes(router *gin.Engine, ctrl *controller.AuthController, auth *utils.SessionAuth) {
	router.GET("/", ctrl.Home)
	router.GET("/register", ctrl.RegisterForm)
	router.POST("/register", ctrl.Register)
	router.GET("/login", ctrl.LoginForm)
	router.POST("/login", ctrl.Login)

	protected := router.Group("/")
	protected.Use(auth.RequireSessionPage())
	{
		protected.GET("/secrets", ctrl.Secrets)
		protected.GET("/logout", ctrl.Logout)
	}

	download := router.Group("/")
	download.Use(auth.RequireSessionFile())
	{
		download.GET("/download", ctrl.Download)
	}
}
