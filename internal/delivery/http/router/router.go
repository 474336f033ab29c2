// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	VisitHandler   *handler.VisitHandler
	CouponHandler  *handler.CouponHandler
	PollHandler    *handler.PollHandler
	NoticeHandler  *handler.NoticeHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	visitHandler   *handler.VisitHandler
	couponHandler  *handler.CouponHandler
	pollHandler    *handler.PollHandler
	noticeHandler  *handler.NoticeHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		visitHandler:   params.VisitHandler,
		couponHandler:  params.CouponHandler,
		pollHandler:    params.PollHandler,
		noticeHandler:  params.NoticeHandler,
		reportHandler:  params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Mutating routes additionally require a registered (non-guest) session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Phone-number resolution is the only unauthenticated business route.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	authed := r.authMiddleware.Authenticate
	registered := r.authMiddleware.RequireRegistered

	e.GET("/me", r.authHandler.Me, authed)
	e.POST("/me/recompute", r.authHandler.Recompute, authed, registered)
	e.GET("/badge", r.noticeHandler.Badge, authed)

	e.GET("/cards", r.visitHandler.Cards, authed)
	visitGroup := e.Group("/visits", authed)
	{
		visitGroup.GET("", r.visitHandler.List)
		visitGroup.PUT("/:id/card", r.visitHandler.AttachCard, registered)
		visitGroup.PUT("/:id/review", r.visitHandler.EditReview, registered)
		visitGroup.DELETE("/:id", r.visitHandler.Delete, registered)
	}

	couponGroup := e.Group("/coupons", authed)
	{
		couponGroup.GET("", r.couponHandler.List)
		couponGroup.GET("/:id/qr", r.couponHandler.QR, registered)
		couponGroup.POST("/:id/redeem", r.couponHandler.Redeem, registered)
	}

	pollGroup := e.Group("/polls", authed)
	{
		pollGroup.GET("", r.pollHandler.List)
		pollGroup.GET("/:id/my-response", r.pollHandler.MyResponse)
		pollGroup.GET("/:id/tally", r.pollHandler.Tally)
		pollGroup.POST("/:id/responses", r.pollHandler.Submit, registered)
	}

	noticeGroup := e.Group("/notices", authed)
	{
		noticeGroup.GET("", r.noticeHandler.List)
		noticeGroup.GET("/unread-count", r.noticeHandler.UnreadCount)
		noticeGroup.POST("/read-all", r.noticeHandler.ReadAll, registered)
	}

	reportGroup := e.Group("/reports", authed)
	{
		reportGroup.GET("", r.reportHandler.List)
		reportGroup.POST("", r.reportHandler.Submit)
		reportGroup.POST("/read-responses", r.reportHandler.ReadResponses, registered)
	}
}
