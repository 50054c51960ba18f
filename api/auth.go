package api

import (
	"database/sql"
	"net/http"

	models "github.com/BitLeap/BitLeap-Backend/api/models"
	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	basemodels "github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Auth struct {
	server *Server
}

func (a Auth) router(server *Server) {
	a.server = server

	serverGroup := server.router.Group("/auth")
	serverGroup.GET("test", a.testAuth)
	serverGroup.POST("register", a.register)
	serverGroup.POST("login", a.login)
}

func (a Auth) testAuth(ctx *gin.Context) {
	dr := basemodels.SuccessResponse{
		Status:  "success",
		Message: "Authentication API is active",
		Version: utils.REVISION,
	}

	ctx.JSON(http.StatusOK, dr)
}

func (a *Auth) register(ctx *gin.Context) {
	var request models.RegisterUserParams

	err := ctx.ShouldBindJSON(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		return
	}

	hashed, err := utils.GenerateHashValue(request.Password)
	if err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError("could not process password"))
		return
	}

	arg := db.CreateUserParams{
		FirstName:      sql.NullString{String: request.FirstName, Valid: true},
		LastName:       sql.NullString{String: request.LastName, Valid: true},
		Email:          request.Email,
		PhoneNumber:    request.PhoneNumber,
		HashedPassword: hashed,
		Role:           db.RoleUser,
	}

	newUser, err := a.server.users.CreateUserWithWalletAndKYC(ctx, &arg)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID: newUser.ID,
		Role:   string(newUser.Role),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(err.Error()))
		return
	}

	userWT := models.UserWithToken{
		User:  models.UserResponse{}.ToUserResponse(newUser),
		Token: token,
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("account created successfully", userWT))
}

func (a *Auth) login(ctx *gin.Context) {
	var request models.LoginParams

	err := ctx.ShouldBindJSON(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		return
	}

	found, err := a.server.users.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		ctx.JSON(statusForError(err), basemodels.NewError(err.Error()))
		return
	}

	kyc, err := a.server.users.GetKYC(ctx, found.ID)
	verified := err == nil && kyc.Status == db.KYCVerified

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID:   found.ID,
		Role:     string(found.Role),
		Verified: verified,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(err.Error()))
		return
	}

	userWT := models.UserWithToken{
		User:  models.UserResponse{}.ToUserResponse(found),
		Token: token,
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("login successful", userWT))
}
