package handlers

import (
	"omnigate/internal/models"
	"omnigate/internal/repositories"
	"omnigate/internal/services/gateway"
	"omnigate/internal/services/rates"
	"omnigate/internal/utils/pagination"
	"omnigate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the owner-gated surface: rate configuration, fee
// withdrawal and the audit trail.
type AdminHandler struct {
	rates   rates.Service
	gateway gateway.Service
	audits  repositories.FeeAuditRepository
}

func NewAdminHandler(ratesSvc rates.Service, gatewaySvc gateway.Service, audits repositories.FeeAuditRepository) *AdminHandler {
	return &AdminHandler{
		rates:   ratesSvc,
		gateway: gatewaySvc,
		audits:  audits,
	}
}

// SetDefaultRate handles PUT /api/admin/fees/default requests.
func (h *AdminHandler) SetDefaultRate(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		RateBps uint32 `json:"rate_bps"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	if err := h.rates.SetDefaultRate(c.Context(), claims, rates.BasisPoints(req.RateBps)); err != nil {
		return respondServiceError(c, err)
	}
	return response.Success(c, "default rate updated", fiber.Map{"rate_bps": req.RateBps})
}

// SetAssetRate handles PUT /api/admin/fees/assets/:asset requests. A zero
// rate is stored as an explicit zero override.
func (h *AdminHandler) SetAssetRate(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	asset := c.Params("asset")

	var req struct {
		RateBps uint32 `json:"rate_bps"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	if err := h.rates.SetAssetRate(c.Context(), claims, asset, rates.BasisPoints(req.RateBps)); err != nil {
		return respondServiceError(c, err)
	}
	return response.Success(c, "asset rate updated", fiber.Map{"asset": asset, "rate_bps": req.RateBps})
}

// RemoveAssetRate handles DELETE /api/admin/fees/assets/:asset requests,
// returning the asset to the default rate.
func (h *AdminHandler) RemoveAssetRate(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	asset := c.Params("asset")

	if err := h.rates.RemoveAssetRate(c.Context(), claims, asset); err != nil {
		return respondServiceError(c, err)
	}
	return response.Success(c, "asset rate removed", fiber.Map{"asset": asset})
}

// GetRates handles GET /api/admin/fees requests.
func (h *AdminHandler) GetRates(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	defaultRate, err := h.rates.DefaultRate(c.Context())
	if err != nil {
		return response.InternalError(c, "failed to read default rate")
	}
	overrides, err := h.rates.ListAssetRates(c.Context(), claims)
	if err != nil {
		return respondServiceError(c, err)
	}

	return response.Success(c, "fee rates", fiber.Map{
		"default_rate_bps": defaultRate,
		"overrides":        overrides,
	})
}

// WithdrawFees handles POST /api/admin/fees/withdraw requests.
func (h *AdminHandler) WithdrawFees(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Asset  string `json:"asset"`
		To     string `json:"to"`
		Amount uint64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if req.Asset == "" || req.To == "" || req.Amount == 0 {
		return response.BadRequest(c, "asset, to and amount are required")
	}

	if err := h.gateway.WithdrawFees(c.Context(), claims, req.Asset, req.To, req.Amount); err != nil {
		return respondServiceError(c, err)
	}
	return response.Success(c, "fees withdrawn", fiber.Map{
		"asset":  req.Asset,
		"to":     req.To,
		"amount": req.Amount,
	})
}

// GetAuditTrail handles GET /api/admin/audit requests.
func (h *AdminHandler) GetAuditTrail(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	records, total, err := h.audits.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return response.InternalError(c, "failed to fetch audit trail")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, records))
}
