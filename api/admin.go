package api

import (
	"net/http"
	"strconv"

	"github.com/BitLeap/BitLeap-Backend/api/apistrings"
	models "github.com/BitLeap/BitLeap-Backend/api/models"
	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/services/funding"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Admin struct {
	server *Server
}

func (a Admin) router(server *Server) {
	a.server = server

	serverGroupV1 := server.router.Group("/admin/v1")
	serverGroupV1.Use(AuthenticatedMiddleware(), AdminOnlyMiddleware())

	serverGroupV1.GET("users", a.listUsers)
	serverGroupV1.POST("users/:id/role", a.setUserRole)
	serverGroupV1.GET("trades", a.listTrades)
	serverGroupV1.GET("deposits", a.listPendingDeposits)
	serverGroupV1.POST("deposits/:id/decision", a.decideDeposit)
	serverGroupV1.GET("withdrawals", a.listPendingWithdrawals)
	serverGroupV1.POST("withdrawals/:id/decision", a.decideWithdrawal)
	serverGroupV1.GET("kyc", a.listPendingKYC)
	serverGroupV1.POST("kyc/decision", a.decideKYC)
}

func (a *Admin) listUsers(ctx *gin.Context) {
	users, err := a.server.users.ListUsers(ctx, 100, 0)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.UserResponse{}.ToUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("registered users", responses))
}

func (a *Admin) setUserRole(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("invalid user id"))
		return
	}

	var request models.UserRoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	updated, err := a.server.users.SetUserRole(ctx, db.UserRole(activeUser.Role), userID, db.UserRole(request.Role))
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("user role updated", models.UserResponse{}.ToUserResponse(updated)))
}

func (a *Admin) listTrades(ctx *gin.Context) {
	trades, err := a.server.trades.ListAllTrades(ctx, 100, 0)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("all trades", trades))
}

func (a *Admin) listPendingDeposits(ctx *gin.Context) {
	deposits, err := a.server.funding.GetDepositsByStatus(ctx, db.DepositPending)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("pending deposits", deposits))
}

func (a *Admin) decideDeposit(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	depositID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("invalid deposit id"))
		return
	}

	var request models.DepositDecisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	deposit, err := a.server.funding.DecideDeposit(ctx, db.UserRole(activeUser.Role), depositID, funding.DepositAction(request.Action))
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("deposit decision applied", deposit))
}

func (a *Admin) listPendingWithdrawals(ctx *gin.Context) {
	withdrawals, err := a.server.funding.GetWithdrawalsByStatus(ctx, db.WithdrawalPending)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("pending withdrawals", withdrawals))
}

func (a *Admin) decideWithdrawal(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	withdrawalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("invalid withdrawal id"))
		return
	}

	var request models.WithdrawalDecisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	withdrawal, err := a.server.funding.DecideWithdrawal(ctx, db.UserRole(activeUser.Role), withdrawalID, funding.WithdrawalAction(request.Action), request.Note)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("withdrawal decision applied", withdrawal))
}

func (a *Admin) listPendingKYC(ctx *gin.Context) {
	records, err := a.server.users.ListPendingKYC(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	responses := make([]models.KYCResponse, 0, len(records))
	for i := range records {
		responses = append(responses, models.ToKYCResponse(&records[i]))
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("pending KYC submissions", responses))
}

func (a *Admin) decideKYC(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	var request models.KYCDecisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	record, err := a.server.users.DecideKYC(ctx, db.UserRole(activeUser.Role), request.UserID, *request.Approve, request.Note)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("KYC decision applied", models.ToKYCResponse(record)))
}
