// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"casedesk-server/commons"
	"casedesk-server/handlers"
	"casedesk-server/middlewares"
	"casedesk-server/models"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/signup", handlers.SignupHandler)
	api_v1.POST("/auth/login", handlers.LoginHandler)
	api_v1.POST("/auth/logout", handlers.LogoutHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/users/", handlers.GetProfileHandler, middlewares.VerifySessionMiddleware)
	api_v1.POST("/cases", handlers.SubmitCaseHandler, middlewares.VerifySessionMiddleware, middlewares.RequireRole(models.RoleVictim))
	api_v1.GET("/cases", handlers.ListCasesHandler, middlewares.VerifySessionMiddleware, middlewares.RequireRole(models.RoleInvestigator))
	api_v1.GET("/uploads/*", handlers.ServeUploadHandler)
	api_v1.POST("/contact", handlers.ContactHandler)
	commons.Logger.Info("v1 routes registered successfully")
}
