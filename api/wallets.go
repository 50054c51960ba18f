package api

import (
	"net/http"

	"github.com/BitLeap/BitLeap-Backend/api/apistrings"
	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Wallets struct {
	server *Server
}

func (w Wallets) router(server *Server) {
	w.server = server

	serverGroupV1 := server.router.Group("/api/v1/wallets")
	serverGroupV1.GET("", AuthenticatedMiddleware(), w.listMyWallets)
}

func (w *Wallets) listMyWallets(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	wallets, err := w.server.wallets.GetUserWallets(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("your wallets", wallets))
}
