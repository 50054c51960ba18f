package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	apimodels "github.com/BitLeap/BitLeap-Backend/api/models"
	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/models"
	"github.com/BitLeap/BitLeap-Backend/providers"
	"github.com/BitLeap/BitLeap-Backend/providers/cryptocurrency"
	"github.com/BitLeap/BitLeap-Backend/services"
	"github.com/BitLeap/BitLeap-Backend/services/funding"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/BitLeap/BitLeap-Backend/services/pricing"
	"github.com/BitLeap/BitLeap-Backend/services/trade"
	user_service "github.com/BitLeap/BitLeap-Backend/services/user"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router   *gin.Engine
	config   *utils.Config
	logger   *logging.Logger
	store    db.Store
	provider *providers.ProviderService

	users   *user_service.UserService
	wallets *wallet.WalletService
	pricing *pricing.PricingService
	trades  *trade.TradeService
	funding *funding.FundingService
}

func NewServer(envPath string) *Server {
	utils.EnvPath = envPath
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	l := logging.NewLogger(c)
	store := db.NewStore(conn)

	p := providers.NewProviderService()
	rates, err := cryptocurrency.NewRatesProvider()
	if err != nil {
		panic(fmt.Sprintf("Could not set up rates provider: %v", err))
	}
	p.AddProvider(rates)

	// Redis is optional; pricing degrades to live fetches without it.
	var cache *services.RedisService
	if c.RedisHost != "" {
		cache, err = services.NewRedisService(&services.RedisConfig{
			Host:     c.RedisHost,
			Port:     c.RedisPort,
			Password: c.RedisPassword,
		})
		if err != nil {
			l.Error(fmt.Sprintf("redis unavailable, running without price cache: %v", err))
			cache = nil
		}
	}

	refs, err := utils.NewReferenceGenerator(c.HashIDSalt)
	if err != nil {
		panic(fmt.Sprintf("Could not set up reference generator: %v", err))
	}

	walletService := wallet.NewWalletService(store, l)
	pricingService := pricing.NewPricingService(rates, cache, l)
	tradeService := trade.NewTradeService(store, walletService, pricingService, l)
	fundingService := funding.NewFundingService(store, walletService, refs, l)
	userService := user_service.NewUserService(store, l, walletService)

	g := gin.Default()
	apimodels.RegisterValidations()
	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:   g,
		config:   c,
		logger:   l,
		store:    store,
		provider: p,
		users:    userService,
		wallets:  walletService,
		pricing:  pricingService,
		trades:   tradeService,
		funding:  fundingService,
	}
}

func (s *Server) Start() {
	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to BitLeap!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Auth{}.router(s)
	Markets{}.router(s)
	Trades{}.router(s)
	Wallets{}.router(s)
	Funding{}.router(s)
	KYC{}.router(s)
	Admin{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
