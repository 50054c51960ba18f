package api

import (
	"net/http"

	"github.com/BitLeap/BitLeap-Backend/api/apistrings"
	models "github.com/BitLeap/BitLeap-Backend/api/models"
	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type KYC struct {
	server *Server
}

func (k KYC) router(server *Server) {
	k.server = server

	serverGroupV1 := server.router.Group("/api/v1/kyc")
	serverGroupV1.POST("submit", AuthenticatedMiddleware(), k.submit)
	serverGroupV1.GET("status", AuthenticatedMiddleware(), k.status)
}

func (k *KYC) submit(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	var request models.SubmitKYCRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.BadRequest))
		return
	}

	record, err := k.server.users.SubmitKYC(ctx, activeUser.UserID, request.DocumentType, request.DocumentNumber)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("KYC submitted for review", models.ToKYCResponse(record)))
}

func (k *KYC) status(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
		return
	}

	record, err := k.server.users.GetKYC(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("KYC status", models.ToKYCResponse(record)))
}
