package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/application/usecase"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
)

// PartnerHandler maneja las peticiones HTTP de partners (protegido).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Create da de alta un partner (solo admin).
// POST /api/partners
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	partner, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPartnerResponse(partner))
}

// GetBalance devuelve el agregado de saldo. Un partner solo ve el propio.
// GET /api/partners/:id/balance
func (h *PartnerHandler) GetBalance(c *fiber.Ctx) error {
	id := c.Params("id")
	if GetRole(c) == entity.RolePartner && id != GetPartnerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	balance, err := h.uc.GetBalance(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(balance)
}

// List lista partners (solo admin).
// GET /api/partners
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	partners, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, toPartnerResponse(p))
	}
	return c.JSON(out)
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		CommissionRate: p.CommissionRate,
		CreatedAt:      p.CreatedAt,
	}
}
