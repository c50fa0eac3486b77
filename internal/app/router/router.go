package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	stockhandler "stock_dashboard/internal/feature/stocks/transport/handler"
	platformhandler "stock_dashboard/internal/platform/http/handler"
)

func NewRouter(stocks *stockhandler.StockHandler) *gin.Engine {
	r := gin.Default()
	// ブラウザのダッシュボードが別オリジンから叩くのでCORSを全開放
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")
	{
		api.GET("/stocks", stocks.List)
		api.POST("/stocks", stocks.Create)
		api.PUT("/stocks/:id", stocks.Update)
		api.DELETE("/stocks/:id", stocks.Delete)
	}

	return r
}
