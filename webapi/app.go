// Package webapi assembles the fiber application: middleware, route groups
// and the health probe.
package webapi

import (
	accountsvc "github.com/corebank/ledger/pkg/service/account"
	ledgersvc "github.com/corebank/ledger/pkg/service/ledger"
	"github.com/corebank/ledger/webapi/account"
	"github.com/corebank/ledger/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupApp builds the fiber app with all routes and middleware wired to the
// given services.
func SetupApp(accountSvc *accountsvc.Service, ledgerSvc *ledgersvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ledger",
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	app.Get("/api/v1/health", Health(ledgerSvc))

	account.Routes(app, accountSvc, ledgerSvc)
	transfer.Routes(app, ledgerSvc)

	return app
}

// Health reports service liveness and store connectivity via a trivial read.
func Health(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "healthy"
		dbStatus := "connected"
		code := fiber.StatusOK
		if err := svc.CheckHealth(c.Context()); err != nil {
			status = "unhealthy"
			dbStatus = "disconnected"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":              status,
			"database_connection": dbStatus,
		})
	}
}
