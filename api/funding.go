package api

import (
	"net/http"

	"github.com/BitLeap/BitLeap-Backend/api/apistrings"
	models "github.com/BitLeap/BitLeap-Backend/api/models"
	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Funding struct {
	server *Server
}

func (f Funding) router(server *Server) {
	f.server = server

	serverGroupV1 := server.router.Group("/api/v1/funding")
	serverGroupV1.POST("deposits", AuthenticatedMiddleware(), f.createDeposit)
	serverGroupV1.GET("deposits", AuthenticatedMiddleware(), f.listMyDeposits)
	serverGroupV1.POST("withdrawals", AuthenticatedMiddleware(), f.createWithdrawal)
	serverGroupV1.GET("withdrawals", AuthenticatedMiddleware(), f.listMyWithdrawals)
}

func (f *Funding) createDeposit(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	var request models.CreateDepositRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		f.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("amount is not a valid number"))
		return
	}

	deposit, err := f.server.funding.CreateDeposit(ctx, activeUser.UserID, request.Asset, request.Network, amount)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess(apistrings.DepositCreated, deposit))
}

func (f *Funding) listMyDeposits(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	deposits, err := f.server.funding.GetUserDeposits(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("your deposits", deposits))
}

func (f *Funding) createWithdrawal(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	var request models.CreateWithdrawalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		f.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("amount is not a valid number"))
		return
	}

	withdrawal, walletSnapshot, err := f.server.funding.CreateWithdrawal(ctx, activeUser.UserID, request.Asset, request.Network, request.Address, amount)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess(apistrings.WithdrawCreate, gin.H{
		"withdrawal": withdrawal,
		"wallet":     walletSnapshot,
	}))
}

func (f *Funding) listMyWithdrawals(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	withdrawals, err := f.server.funding.GetUserWithdrawals(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("your withdrawal requests", withdrawals))
}
