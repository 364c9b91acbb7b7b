package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/auth"
	"github.com/tu-usuario/cowork-pro/internal/application/report"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	BranchUC     *usecase.BranchUseCase
	ClientUC     *usecase.ClientUseCase
	ProfileUC    *usecase.ProfileUseCase
	ContractUC   *usecase.ContractUseCase
	FinanceUC    *usecase.FinanceUseCase
	InvestmentUC *usecase.InvestmentUseCase
	AuthUC       *auth.AuthUseCase
	SummaryUC    *report.SummaryUseCase
	StatementPDF *report.StatementPDFUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Branches y oficinas (protegido)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", RequireRole("admin"), branchHandler.Delete)
	branches.Post("/:id/offices", branchHandler.CreateOffice)
	branches.Get("/:id/offices", branchHandler.ListOffices)

	offices := protected.Group("/offices")
	offices.Put("/:officeId", branchHandler.UpdateOffice)
	offices.Delete("/:officeId", RequireRole("admin"), branchHandler.DeleteOffice)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole("admin"), clientHandler.Delete)

	// Libros contables (protegido)
	profiles := protected.Group("/profiles")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profiles.Post("/", RequireRole("admin"), profileHandler.Create)
	profiles.Get("/", profileHandler.List)
	profiles.Post("/:id/activate", RequireRole("admin"), profileHandler.Activate)
	profiles.Delete("/:id", RequireRole("admin"), profileHandler.Delete)

	// Contracts (protegido)
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)
	contracts.Delete("/:id", RequireRole("admin"), contractHandler.Delete)

	// Finanzas: impuestos, servicios, transacciones y retiros (protegido)
	financeHandler := NewFinanceHandler(deps.FinanceUC)

	taxes := protected.Group("/taxes")
	taxes.Post("/", financeHandler.CreateTax)
	taxes.Get("/", financeHandler.ListTaxes)
	taxes.Put("/:id", financeHandler.UpdateTax)
	taxes.Delete("/:id", RequireRole("admin"), financeHandler.DeleteTax)

	services := protected.Group("/services")
	services.Post("/", financeHandler.CreateService)
	services.Get("/", financeHandler.ListServices)
	services.Delete("/:id", financeHandler.DeleteService)

	transactions := protected.Group("/transactions")
	transactions.Post("/", financeHandler.CreateTransaction)
	transactions.Get("/", financeHandler.ListTransactions)
	transactions.Delete("/:id", financeHandler.DeleteTransaction)

	withdrawals := protected.Group("/withdrawals")
	withdrawals.Post("/", RequireRole("admin"), financeHandler.CreateWithdrawal)
	withdrawals.Get("/", financeHandler.ListWithdrawals)
	withdrawals.Post("/:id/pay", RequireRole("admin"), financeHandler.PayWithdrawal)
	withdrawals.Delete("/:id", RequireRole("admin"), financeHandler.DeleteWithdrawal)

	// Inversiones y estado de cuenta (protegido)
	investments := protected.Group("/investments")
	investmentHandler := NewInvestmentHandler(deps.InvestmentUC, deps.StatementPDF)
	investments.Post("/", RequireRole("admin"), investmentHandler.Create)
	investments.Get("/", investmentHandler.List)
	// La ruta fija va antes que la paramétrica para que fiber no la capture como :id.
	investments.Get("/calculations", investmentHandler.Calculations)
	investments.Get("/:id/calculation", investmentHandler.Calculation)
	investments.Get("/:id/statement.pdf", investmentHandler.StatementPDF)
	investments.Get("/:id", investmentHandler.GetByID)
	investments.Put("/:id", RequireRole("admin"), investmentHandler.Update)
	investments.Delete("/:id", RequireRole("admin"), investmentHandler.Delete)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.SummaryUC)
	reports.Get("/annual", reportHandler.Annual)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/balance", reportHandler.Balance)
}
