package accounting

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupAccountingRoutes sets up the journal and financial report routes
func SetupAccountingRoutes(app *fiber.App) {
	api := app.Group("/api/accounting")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "comptable"))

	api.Get("/chart", GetChartAPI)
	api.Get("/entries", GetEntriesAPI)
	api.Post("/entries", CreateEntryAPI)

	api.Get("/grand-livre", GetGeneralLedgerAPI)
	api.Get("/balance", GetTrialBalanceAPI)
	api.Get("/compte-resultat", GetIncomeStatementAPI)
	api.Get("/bilan", GetBalanceSheetAPI)

	api.Get("/grand-livre/export", ExportGeneralLedgerAPI)
	api.Get("/balance/export", ExportTrialBalanceAPI)
	api.Get("/compte-resultat/export", ExportIncomeStatementAPI)
	api.Get("/bilan/export", ExportBalanceSheetAPI)
}
