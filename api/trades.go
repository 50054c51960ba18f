package api

import (
	"net/http"

	"github.com/BitLeap/BitLeap-Backend/api/apistrings"
	models "github.com/BitLeap/BitLeap-Backend/api/models"
	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/services/trade"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Trades struct {
	server *Server
}

func (t Trades) router(server *Server) {
	t.server = server

	serverGroupV1 := server.router.Group("/api/v1/trades")
	serverGroupV1.POST("", AuthenticatedMiddleware(), t.openTrade)
	serverGroupV1.GET("", AuthenticatedMiddleware(), t.listMyTrades)
	serverGroupV1.POST(":id/resolve", AuthenticatedMiddleware(), t.resolveTrade)
}

func (t *Trades) openTrade(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	var request models.OpenTradeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		t.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	stake, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("amount is not a valid number"))
		return
	}

	arg := trade.OpenTradeParams{
		UserID:       activeUser.UserID,
		Pair:         request.Pair,
		Direction:    db.TradeDirection(request.Direction),
		Stake:        stake,
		DurationSecs: request.DurationSecs,
	}

	if request.EntryPrice != "" {
		entry, err := decimal.NewFromString(request.EntryPrice)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError("entry_price is not a valid number"))
			return
		}
		arg.EntryPrice = &entry
	}

	result, err := t.server.trades.OpenTrade(ctx, arg)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess(apistrings.TradeOpened, result))
}

func (t *Trades) resolveTrade(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	tradeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("invalid trade id"))
		return
	}

	result, err := t.server.trades.ResolveTrade(ctx, activeUser.UserID, db.UserRole(activeUser.Role), tradeID)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(apistrings.TradeResolved, result))
}

func (t *Trades) listMyTrades(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	trades, err := t.server.trades.GetUserTrades(ctx, activeUser.UserID, 100, 0)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("your trades", trades))
}
