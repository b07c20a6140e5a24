package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
)

// CommissionHandler maneja las peticiones HTTP del ledger de comisiones (protegido).
type CommissionHandler struct {
	uc *ledger.CommissionUseCase
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(uc *ledger.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// Record registra una comisión manualmente (solo admin).
// POST /api/commissions
func (h *CommissionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordCommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	commission, err := h.uc.Record(c.Context(), ledger.RecordInput{
		PartnerID: in.PartnerID,
		Type:      in.Type,
		Amount:    in.Amount,
		LeadID:    in.LeadID,
		ClientID:  in.ClientID,
		Period:    in.Period,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCommissionResponse(commission))
}

// Approve aprueba una comisión pendiente (solo admin).
// POST /api/commissions/:id/approve
func (h *CommissionHandler) Approve(c *fiber.Ctx) error {
	commission, err := h.uc.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toCommissionResponse(commission))
}

// MarkPaid liquida una comisión aprobada y acredita el saldo (solo admin).
// POST /api/commissions/:id/pay
func (h *CommissionHandler) MarkPaid(c *fiber.Ctx) error {
	commission, err := h.uc.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toCommissionResponse(commission))
}

// List lista comisiones: un admin ve todas, un partner solo las propias.
// GET /api/commissions
func (h *CommissionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	var (
		commissions []*entity.Commission
		err         error
	)
	if GetRole(c) == entity.RolePartner {
		commissions, err = h.uc.ListByPartner(GetPartnerID(c), page.Limit, page.Offset)
	} else {
		commissions, err = h.uc.List(page.Limit, page.Offset)
	}
	if err != nil {
		return domainError(c, err)
	}

	out := make([]*dto.CommissionResponse, 0, len(commissions))
	for _, cm := range commissions {
		out = append(out, toCommissionResponse(cm))
	}
	return c.JSON(out)
}

func toCommissionResponse(cm *entity.Commission) *dto.CommissionResponse {
	return &dto.CommissionResponse{
		ID:        cm.ID,
		PartnerID: cm.PartnerID,
		LeadID:    cm.LeadID,
		ClientID:  cm.ClientID,
		Period:    cm.Period,
		Type:      cm.Type,
		Amount:    cm.Amount,
		Status:    cm.Status,
		PaidDate:  cm.PaidDate,
		CreatedAt: cm.CreatedAt,
	}
}
