package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
)

// PayoutHandler maneja las peticiones HTTP de retiros (protegido).
type PayoutHandler struct {
	uc *ledger.PayoutUseCase
}

// NewPayoutHandler construye el handler.
func NewPayoutHandler(uc *ledger.PayoutUseCase) *PayoutHandler {
	return &PayoutHandler{uc: uc}
}

// Request solicita un retiro contra el saldo propio (solo partner).
// POST /api/payouts
func (h *PayoutHandler) Request(c *fiber.Ctx) error {
	partnerID := GetPartnerID(c)
	if partnerID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un partner puede solicitar retiros"})
	}
	var in dto.RequestPayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payout, err := h.uc.Request(c.Context(), partnerID, in.Amount)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPayoutResponse(payout))
}

// Approve aprueba un retiro solicitado (solo admin).
// POST /api/payouts/:id/approve
func (h *PayoutHandler) Approve(c *fiber.Ctx) error {
	payout, err := h.uc.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPayoutResponse(payout))
}

// MarkPaid liquida un retiro aprobado con su referencia de pago (solo admin).
// POST /api/payouts/:id/pay
func (h *PayoutHandler) MarkPaid(c *fiber.Ctx) error {
	var in dto.MarkPayoutPaidRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payout, err := h.uc.MarkPaid(c.Context(), c.Params("id"), in.PaymentReference)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPayoutResponse(payout))
}

// Reject rechaza un retiro no terminal y devuelve el monto al saldo (solo admin).
// POST /api/payouts/:id/reject
func (h *PayoutHandler) Reject(c *fiber.Ctx) error {
	payout, err := h.uc.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toPayoutResponse(payout))
}

// List lista retiros: un admin ve todos, un partner solo los propios.
// GET /api/payouts
func (h *PayoutHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	var (
		payouts []*entity.Payout
		err     error
	)
	if GetRole(c) == entity.RolePartner {
		payouts, err = h.uc.ListByPartner(GetPartnerID(c), page.Limit, page.Offset)
	} else {
		payouts, err = h.uc.List(page.Limit, page.Offset)
	}
	if err != nil {
		return domainError(c, err)
	}

	out := make([]*dto.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		out = append(out, toPayoutResponse(p))
	}
	return c.JSON(out)
}

func toPayoutResponse(p *entity.Payout) *dto.PayoutResponse {
	return &dto.PayoutResponse{
		ID:               p.ID,
		PartnerID:        p.PartnerID,
		Amount:           p.Amount,
		Status:           p.Status,
		PaymentReference: p.PaymentReference,
		RequestedAt:      p.RequestedAt,
		ApprovedAt:       p.ApprovedAt,
		PaidAt:           p.PaidAt,
	}
}
