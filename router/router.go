package router

import (
	"github.com/labstack/echo/v4"

	"farmmate/pkg/middleware"
)

func New(
	e *echo.Echo,
	plotCtrl interface{ List(echo.Context) error; Create(echo.Context) error; Patch(echo.Context) error; Delete(echo.Context) error },
	remCtrl interface{ List(echo.Context) error; Create(echo.Context) error; Patch(echo.Context) error; Delete(echo.Context) error; Toggle(echo.Context) error },
	expCtrl interface{ List(echo.Context) error; Create(echo.Context) error; Patch(echo.Context) error; Delete(echo.Context) error; Export(echo.Context) error },
	dashCtrl interface{ Stats(echo.Context) error; Monthly(echo.Context) error; Categories(echo.Context) error },
	marketCtrl interface{ Prices(echo.Context) error; Refresh(echo.Context) error },
	profileCtrl interface{ Get(echo.Context) error; Put(echo.Context) error },
	authCtrl interface{ DevLogin(echo.Context) error; WhoAmI(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	requireUser bool,
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("", middleware.RequireUser(requireUser))

	api.GET("/whoami", authCtrl.WhoAmI)
	e.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.GET("/plots", plotCtrl.List)
	api.POST("/plots", plotCtrl.Create)
	api.PATCH("/plots/:id", plotCtrl.Patch)
	api.DELETE("/plots/:id", plotCtrl.Delete)

	api.GET("/reminders", remCtrl.List)
	api.POST("/reminders", remCtrl.Create)
	api.PATCH("/reminders/:id", remCtrl.Patch)
	api.DELETE("/reminders/:id", remCtrl.Delete)
	api.POST("/reminders/:id/toggle", remCtrl.Toggle)

	api.GET("/expenses", expCtrl.List)
	api.POST("/expenses", expCtrl.Create)
	api.PATCH("/expenses/:id", expCtrl.Patch)
	api.DELETE("/expenses/:id", expCtrl.Delete)
	api.GET("/expenses/export", expCtrl.Export)

	api.GET("/dashboard/stats", dashCtrl.Stats)
	api.GET("/dashboard/monthly", dashCtrl.Monthly)
	api.GET("/dashboard/categories", dashCtrl.Categories)

	api.GET("/market/prices", marketCtrl.Prices)
	api.POST("/market/refresh", marketCtrl.Refresh)

	api.GET("/profile", profileCtrl.Get)
	api.PUT("/profile", profileCtrl.Put)
	return e
}
