package http

import (
	"returnhub/internal/controller/http/handlers"

	"github.com/gin-gonic/gin"
)

// Router wires the portal and staff endpoints.
type Router struct {
	portal  handlers.PortalHandler
	returns handlers.ReturnHandler
	images  handlers.ImageHandler
	reports handlers.ReportHandler
}

func NewRouter(
	portal handlers.PortalHandler,
	returnHandler handlers.ReturnHandler,
	images handlers.ImageHandler,
	reports handlers.ReportHandler,
) *Router {
	return &Router{
		portal:  portal,
		returns: returnHandler,
		images:  images,
		reports: reports,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// customer portal
	engine.POST("/portal/login", r.portal.Login)
	engine.POST("/portal/returns", r.portal.Submit)
	engine.GET("/portal/returns/:request_number", r.portal.Track)

	// staff dashboard
	engine.GET("/returns", r.returns.Filter)
	engine.GET("/returns/statistics", r.returns.Statistics)
	engine.GET("/returns/export", r.returns.Export)
	engine.GET("/returns/:return_id", r.returns.Get)
	engine.POST("/returns/:return_id/status", r.returns.UpdateStatus)
	engine.POST("/returns/:return_id/inspection", r.returns.SubmitInspection)
	engine.GET("/returns/:return_id/inspections", r.returns.Inspections)
	engine.POST("/returns/:return_id/refund", r.returns.ProcessRefund)
	engine.PATCH("/returns/:return_id/info", r.returns.UpdateInfo)
	engine.GET("/returns/:return_id/activity", r.returns.Activity)
	engine.POST("/returns/:return_id/images", r.images.Upload)

	// analysis reports
	engine.GET("/reports/analysis", r.reports.List)
	engine.GET("/reports/analysis/:month", r.reports.Get)
	engine.POST("/reports/analysis/:month", r.reports.Generate)
}
