package routes

import (
	"coinadmin/controllers/adminusers"
	"coinadmin/controllers/auth"
	"coinadmin/controllers/entries"
	"coinadmin/controllers/games"
	"coinadmin/controllers/leads"
	"coinadmin/controllers/logins"
	"coinadmin/controllers/payments"
	"coinadmin/controllers/salaries"
	"coinadmin/controllers/stats"
	"coinadmin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api.Post("/auth/login", auth.Login)

	// public lead capture form
	api.Post("/facebook-leads", leads.CreateLead)

	authed := api.Group("", middlewares.RequireAuth)

	authed.Get("/auth/me", auth.Me)
	authed.Post("/auth/logout", auth.Logout)

	authed.Get("/games", games.ListGames)
	authed.Post("/games", games.CreateGame)
	authed.Put("/games/:id", games.UpdateGame)
	authed.Post("/games/:id/add-moves", games.AddMoves)
	authed.Post("/games/:id/reset-recharge", games.ResetRecharge)

	authed.Get("/game-entries", entries.ListEntries)
	authed.Post("/game-entries", entries.CreateEntry)
	authed.Get("/game-entries/pending", entries.ListPending)
	authed.Get("/game-entries/pending/by-tag", entries.FindPendingByTag)
	authed.Post("/game-entries/:id/clear-pending", entries.ClearPending)

	authed.Get("/payments", payments.ListPayments)
	authed.Get("/payments/totals", payments.GetTotals)
	authed.Post("/payments/cashin", payments.RecordCashIn)
	authed.Post("/payments/cashout", payments.RecordCashOut)
	authed.Put("/payments/:id", payments.UpdatePayment)

	authed.Get("/salaries", salaries.ListSalaries)
	authed.Post("/salaries", salaries.UpsertSalary)
	authed.Put("/salaries/:id", salaries.UpdateSalary)

	authed.Get("/stats/game-coins", stats.GameCoins)

	authed.Get("/logins", logins.ListSessions)
	authed.Get("/logins/:id", logins.GetSession)
	authed.Post("/logins/start", logins.StartSession)
	authed.Post("/logins/end", logins.EndSession)

	authed.Get("/facebook-leads", leads.ListLeads)
	authed.Get("/facebook-leads/export", leads.ExportCSV)
	authed.Put("/facebook-leads/:id", leads.UpdateLead)

	// destructive operations stay behind the admin gate
	admin := api.Group("", middlewares.RequireAuth, middlewares.RequireAdmin)

	admin.Delete("/games/:id", games.DeleteGame)
	admin.Delete("/payments/:id", payments.DeletePayment)
	admin.Delete("/salaries/:id", salaries.DeleteSalary)

	admin.Get("/admin/users", adminusers.ListUsers)
	admin.Put("/admin/users/:id", adminusers.UpdateTotals)
	admin.Delete("/admin/users/:id", adminusers.DeleteUser)
}
