package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/cowork-pro/internal/application/auth"
	appinvestment "github.com/tu-usuario/cowork-pro/internal/application/investment"
	"github.com/tu-usuario/cowork-pro/internal/application/report"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/cowork-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/cowork-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cowork-pro/internal/interfaces/http"
	"github.com/tu-usuario/cowork-pro/pkg/config"
	"github.com/tu-usuario/cowork-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	officeRepo := postgres.NewOfficeRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	taxRepo := postgres.NewTaxRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	serviceRepo := postgres.NewClientServiceRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	investmentRepo := postgres.NewInvestmentRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, officeRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo)
	contractUC := usecase.NewContractUseCase(contractRepo, taxRepo, profileRepo)
	financeUC := usecase.NewFinanceUseCase(taxRepo, serviceRepo, transactionRepo, withdrawalRepo)

	// Motor de participación de inversionistas y reportes agregados.
	calculator := appinvestment.NewCalculatorUseCase(financeRepo, log)
	investmentUC := usecase.NewInvestmentUseCase(investmentRepo, calculator)
	summaryUC := report.NewSummaryUseCase(financeRepo, profileRepo)

	// PDF: estado de cuenta del inversionista
	statementGenerator := infrapdf.NewMarotoStatementGenerator()
	statementPDFUC := report.NewStatementPDFUseCase(investmentRepo, calculator, statementGenerator)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cowork Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		BranchUC:     branchUC,
		ClientUC:     clientUC,
		ProfileUC:    profileUC,
		ContractUC:   contractUC,
		FinanceUC:    financeUC,
		InvestmentUC: investmentUC,
		AuthUC:       authUC,
		SummaryUC:    summaryUC,
		StatementPDF: statementPDFUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
