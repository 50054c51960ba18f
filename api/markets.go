package api

import (
	"net/http"

	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/gin-gonic/gin"
)

type Markets struct {
	server *Server
}

func (m Markets) router(server *Server) {
	m.server = server

	serverGroupV1 := server.router.Group("/api/v1/markets")
	serverGroupV1.GET("tickers", m.tickers)
}

func (m *Markets) tickers(ctx *gin.Context) {
	tickers := m.server.pricing.Tickers(ctx)
	ctx.JSON(http.StatusOK, basemodels.NewSuccess("current market prices", tickers))
}
