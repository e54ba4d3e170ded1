package routes

import (
	"outorga_monitor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLicenses  = "/licenses"
	PathContracts = "/contracts"
	PathNDNE      = "/ndne"
)

func addMonitoringRoutes(rg *gin.RouterGroup, historyHandler *handlers.HistoryHandler, ndneHandler *handlers.NDNEHandler) {
	licenses := rg.Group(PathLicenses)
	{
		licenses.GET("/:license_id/history", historyHandler.GetHistory)
		licenses.GET("/:license_id/history/export", historyHandler.ExportHistory)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.GET("/:contract_id/ndne", ndneHandler.ListRecords)
		contracts.POST("/:contract_id/ndne", ndneHandler.CreateRecord)
	}

	ndne := rg.Group(PathNDNE)
	{
		ndne.POST("/validate", ndneHandler.ValidateRecord)
		ndne.GET("/:id", ndneHandler.GetRecord)
		ndne.PATCH("/:id", ndneHandler.UpdateRecord)
	}
}
