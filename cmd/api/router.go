package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"investtrack/internal/handlers"
	"investtrack/internal/middleware"
	"investtrack/internal/services"
)

// appServices are the dependencies the HTTP layer is built from.
type appServices struct {
	market    services.MarketServicer
	news      services.NewsFetcher
	portfolio services.PortfolioServicer
}

func newRouter(svc appServices) *gin.Engine {
	stockHandler := handlers.NewStockHandler(svc.market, svc.news)
	portfolioHandler := handlers.NewPortfolioHandler(svc.portfolio)
	healthHandler := handlers.NewHealthHandler(svc.market)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)

	stock := api.Group("/stock")
	stock.GET("/search", stockHandler.Search)
	stock.GET("/chart", stockHandler.Chart)
	stock.GET("/quote", stockHandler.Quote)
	stock.GET("/:symbol", stockHandler.Page)

	portfolio := api.Group("/portfolio")
	portfolio.GET("", portfolioHandler.ListPositions)
	portfolio.GET("/summary", portfolioHandler.GetSummary)
	portfolio.GET("/:symbol", portfolioHandler.GetShares)
	portfolio.PUT("/:symbol", portfolioHandler.UpdateShares)
	portfolio.DELETE("/:symbol", portfolioHandler.DeletePosition)

	return router
}
