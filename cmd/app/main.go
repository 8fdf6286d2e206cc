package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/claimrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryorderrepo"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/joborderrepo"
	"fulfillment/internal/adapters/out/postgres/manifestrepo"
	"fulfillment/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		OverdueSweepSpec: goDotEnvVariable("OVERDUE_SWEEP_SPEC"),
	}
	if config.OverdueSweepSpec == "" {
		config.OverdueSweepSpec = "0 * * * *"
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

// mustConnectDB opens the database and reconciles the schema. TranslateError
// is required so unique violations surface as gorm.ErrDuplicatedKey, which
// the claim repository relies on for coverage conflict detection.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&joborderrepo.JobOrderDTO{},
		&joborderrepo.AssignmentDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.ManifestItemDTO{},
		&deliveryorderrepo.DeliveryOrderDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.PaymentDTO{},
		&claimrepo.SourceClaimDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateSweepOverdueInvoicesCommandHandler(),
		configs.OverdueSweepSpec,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateJobOrderCommandHandler(),
		app.CreateAssignTransportCommandHandler(),
		app.CreateAdvanceJobOrderCommandHandler(),
		app.CreateCreateManifestCommandHandler(),
		app.CreateBindManifestTransportCommandHandler(),
		app.CreateAdvanceManifestCommandHandler(),
		app.CreateCancelManifestCommandHandler(),
		app.CreateCreateDeliveryOrderCommandHandler(),
		app.CreateAdvanceDeliveryOrderCommandHandler(),
		app.CreateCancelDeliveryOrderCommandHandler(),
		app.CreateCreateInvoiceCommandHandler(),
		app.CreateUpdateInvoiceCommandHandler(),
		app.CreateCancelInvoiceCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateGetJobOrderQueryHandler(),
		app.CreateGetDeliveryOrdersQueryHandler(),
		app.CreateGetInvoiceQueryHandler(),
		app.CreateGetOutstandingInvoicesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
