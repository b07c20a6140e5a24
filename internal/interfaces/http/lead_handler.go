package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	appfunnel "github.com/jhoicas/agency-ops-api/internal/application/funnel"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
)

// LeadHandler maneja las peticiones HTTP del embudo de leads (protegido).
type LeadHandler struct {
	uc *appfunnel.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *appfunnel.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create da de alta un lead referido (solo partner; siempre nace en Submitted).
// POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	partnerID := GetPartnerID(c)
	if partnerID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un partner puede referir leads"})
	}
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lead, err := h.uc.Create(c.Context(), partnerID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLeadResponse(lead))
}

// ChangeStatus avanza el estado del embudo (solo operadores).
// PATCH /api/leads/:id/status
func (h *LeadHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeLeadStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := appfunnel.Actor{UserID: GetUserID(c), Role: GetRole(c)}
	lead, err := h.uc.ChangeStatus(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toLeadResponse(lead))
}

// UpdateAudit fija las fechas de la sub-ruta de auditoría (solo operadores).
// PATCH /api/leads/:id/audit
func (h *LeadHandler) UpdateAudit(c *fiber.Ctx) error {
	var in dto.LeadAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := appfunnel.Actor{UserID: GetUserID(c), Role: GetRole(c)}
	lead, err := h.uc.UpdateAudit(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toLeadResponse(lead))
}

// GetByID obtiene un lead. Un partner solo ve los propios.
// GET /api/leads/:id
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	lead, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if GetRole(c) == entity.RolePartner && lead.PartnerID != GetPartnerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	return c.JSON(toLeadResponse(lead))
}

// List lista leads: un admin ve todos, un partner solo los propios.
// GET /api/leads
func (h *LeadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	var (
		leads []*entity.Lead
		err   error
	)
	if GetRole(c) == entity.RolePartner {
		leads, err = h.uc.ListByPartner(GetPartnerID(c), page.Limit, page.Offset)
	} else {
		leads, err = h.uc.List(page.Limit, page.Offset)
	}
	if err != nil {
		return domainError(c, err)
	}

	out := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return c.JSON(out)
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:                        l.ID,
		PartnerID:                 l.PartnerID,
		AssignedManagerID:         l.AssignedManagerID,
		CompanyName:               l.CompanyName,
		ContactName:               l.ContactName,
		ContactEmail:              l.ContactEmail,
		ContactPhone:              l.ContactPhone,
		Status:                    l.Status,
		AuditScheduledDate:        l.AuditScheduledDate,
		AuditCompletedDate:        l.AuditCompletedDate,
		AuditCommissionPaid:       l.AuditCommissionPaid,
		ConversionOption:          l.ConversionOption,
		ConversionDate:            l.ConversionDate,
		MonthlyRetainer:           l.MonthlyRetainer,
		RetentionCommissionActive: l.RetentionCommissionActive,
		CommissionAmount:          l.CommissionAmount,
		CreatedAt:                 l.CreatedAt,
	}
}
