package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-ops-api/internal/application/auth"
	appfunnel "github.com/jhoicas/agency-ops-api/internal/application/funnel"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	apppricing "github.com/jhoicas/agency-ops-api/internal/application/pricing"
	"github.com/jhoicas/agency-ops-api/internal/application/usecase"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PartnerUC    *usecase.PartnerUseCase
	LeadUC       *appfunnel.LeadUseCase
	CommissionUC *ledger.CommissionUseCase
	PayoutUC     *ledger.PayoutUseCase
	PackageUC    *apppricing.PackageUseCase
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

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrPartner := RequireRole(entity.RoleAdmin, entity.RolePartner)
	partnerOnly := RequireRole(entity.RolePartner)

	// Partners (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Post("/", adminOnly, partnerHandler.Create)
	partners.Get("/", adminOnly, partnerHandler.List)
	partners.Get("/:id/balance", adminOrPartner, partnerHandler.GetBalance)

	// Leads (protegido)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", partnerOnly, leadHandler.Create)
	leads.Get("/", adminOrPartner, leadHandler.List)
	leads.Get("/:id", adminOrPartner, leadHandler.GetByID)
	// El chequeo fino (admin o manager asignado) lo hace el caso de uso.
	leads.Patch("/:id/status", leadHandler.ChangeStatus)
	leads.Patch("/:id/audit", leadHandler.UpdateAudit)

	// Commissions (protegido)
	commissions := protected.Group("/commissions")
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Post("/", adminOnly, commissionHandler.Record)
	commissions.Get("/", adminOrPartner, commissionHandler.List)
	commissions.Post("/:id/approve", adminOnly, commissionHandler.Approve)
	commissions.Post("/:id/pay", adminOnly, commissionHandler.MarkPaid)

	// Payouts (protegido)
	payouts := protected.Group("/payouts")
	payoutHandler := NewPayoutHandler(deps.PayoutUC)
	payouts.Post("/", partnerOnly, payoutHandler.Request)
	payouts.Get("/", adminOrPartner, payoutHandler.List)
	payouts.Post("/:id/approve", adminOnly, payoutHandler.Approve)
	payouts.Post("/:id/pay", adminOnly, payoutHandler.MarkPaid)
	payouts.Post("/:id/reject", adminOnly, payoutHandler.Reject)

	// Pricing / Packages (protegido, solo admin)
	packageHandler := NewPackageHandler(deps.PackageUC)
	pricingGroup := protected.Group("/pricing")
	pricingGroup.Post("/quote", adminOnly, packageHandler.Quote)
	packages := protected.Group("/packages")
	packages.Post("/", adminOnly, packageHandler.Create)
	packages.Get("/", adminOnly, packageHandler.ListByClient)
	packages.Get("/:id", adminOnly, packageHandler.GetByID)
	packages.Put("/:id", adminOnly, packageHandler.Update)
	packages.Post("/:id/send", adminOnly, packageHandler.Send)
}
