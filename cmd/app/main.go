package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/ledgerrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/shoprepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultProfitRate    = 0.09
	defaultShipperFee    = 5000
	defaultRelaySchedule = "*/10 * * * * *"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err := app.SeedSequences(); err != nil {
		log.Fatalf("Error seeding id sequences: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRelayWarehouseOrdersCommandHandler(),
		configs.RelaySchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		ProfitRate:    floatEnvVariable("PROFIT_RATE", defaultProfitRate),
		ShipperFee:    floatEnvVariable("SHIPPER_FEE", defaultShipperFee),
		RelaySchedule: stringEnvVariable("RELAY_SCHEDULE", defaultRelaySchedule),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func stringEnvVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func floatEnvVariable(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.CartLineDTO{},
		&shoprepo.ShopDTO{},
		&shoprepo.StockItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&ledgerrepo.LedgerDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		RegisterUser:    app.CreateRegisterUserCommandHandler(),
		CreateShop:      app.CreateCreateShopCommandHandler(),
		AddStockItem:    app.CreateAddStockItemCommandHandler(),
		RemoveStockItem: app.CreateRemoveStockItemCommandHandler(),
		AddCartLine:     app.CreateAddCartLineCommandHandler(),
		RemoveCartLine:  app.CreateRemoveCartLineCommandHandler(),
		Checkout:        app.CreateCheckoutCommandHandler(),
		AcceptOrder:     app.CreateAcceptOrderCommandHandler(),
		ClaimOrder:      app.CreateClaimOrderCommandHandler(),
		FinishOrder:     app.CreateFinishOrderCommandHandler(),
		ConfirmOrder:    app.CreateConfirmOrderCommandHandler(),
		Deposit:         app.CreateDepositCommandHandler(),
		Withdraw:        app.CreateWithdrawCommandHandler(),
		ShopPayout:      app.CreateShopPayoutCommandHandler(),

		Authenticate:         app.CreateAuthenticateQueryHandler(),
		GetCustomerOrders:    app.CreateGetCustomerOrdersQueryHandler(),
		GetShipperOrders:     app.CreateGetShipperOrdersQueryHandler(),
		GetShopOrders:        app.CreateGetShopOrdersQueryHandler(),
		GetOrdersReadyToShip: app.CreateGetOrdersReadyToShipQueryHandler(),
		SearchShops:          app.CreateSearchShopsQueryHandler(),
		GetCatalog:           app.CreateGetCatalogQueryHandler(),
	}, httpin.NewSessionStore())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
