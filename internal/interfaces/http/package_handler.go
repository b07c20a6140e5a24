package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	apppricing "github.com/jhoicas/agency-ops-api/internal/application/pricing"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
)

// PackageHandler maneja las peticiones HTTP de cotizaciones (protegido, solo admin).
type PackageHandler struct {
	uc *apppricing.PackageUseCase
}

// NewPackageHandler construye el handler.
func NewPackageHandler(uc *apppricing.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// Quote evalúa el motor de pricing sin persistir.
// POST /api/pricing/quote
func (h *PackageHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quote, err := h.uc.Quote(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(quote)
}

// Create crea una cotización desde el wizard.
// POST /api/packages
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pkg, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPackageResponse(pkg))
}

// Update edita los inputs de una cotización en Draft (recalcula el retainer).
// PUT /api/packages/:id
func (h *PackageHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pkg, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPackageResponse(pkg))
}

// Send marca la cotización como entregada (Draft → Sent).
// POST /api/packages/:id/send
func (h *PackageHandler) Send(c *fiber.Ctx) error {
	pkg, err := h.uc.Send(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPackageResponse(pkg))
}

// GetByID obtiene una cotización.
// GET /api/packages/:id
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	pkg, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPackageResponse(pkg))
}

// ListByClient lista las cotizaciones de un cliente.
// GET /api/packages?client_id=...
func (h *PackageHandler) ListByClient(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	packages, err := h.uc.ListByClient(clientID, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, toPackageResponse(p))
	}
	return c.JSON(out)
}

func toPackageResponse(p *entity.Package) *dto.PackageResponse {
	return &dto.PackageResponse{
		ID:                 p.ID,
		ClientID:           p.ClientID,
		CompanyName:        p.CompanyName,
		ScaleTier:          p.ScaleTier,
		AnnualRevenue:      p.AnnualRevenue,
		GrossMarginPercent: p.GrossMarginPercent,
		GrowthTarget:       p.GrowthTarget,
		SelectedOption:     p.SelectedOption,
		CalculatedRetainer: p.CalculatedRetainer,
		AuditFee:           p.AuditFee,
		DecisionDeadline:   p.DecisionDeadline,
		Status:             p.Status,
		CreatedAt:          p.CreatedAt,
	}
}
