package handlers

import (
	"encoding/hex"
	"errors"
	"strings"

	"omnigate/internal/models"
	"omnigate/internal/services/feeengine"
	"omnigate/internal/services/gateway"
	"omnigate/internal/services/rates"
	"omnigate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// BridgeHandler exposes the fee-charged transfer and quote endpoints.
type BridgeHandler struct {
	service gateway.Service
}

func NewBridgeHandler(s gateway.Service) *BridgeHandler { return &BridgeHandler{service: s} }

type feeRequestBody struct {
	CallerRateBps uint32 `json:"caller_rate_bps"`
	FeeRecipient  string `json:"fee_recipient"`
	PartnerID     string `json:"partner_id"`
}

type sendRequestBody struct {
	Asset          string         `json:"asset"`
	DstChainID     uint32         `json:"dst_chain_id"`
	DstAddress     string         `json:"dst_address"`
	Amount         uint64         `json:"amount"`
	MinNetAmount   uint64         `json:"min_net_amount"`
	RefundAddress  string         `json:"refund_address"`
	PaymentAddress string         `json:"payment_address"`
	AdapterParams  string         `json:"adapter_params"`
	NativeValue    uint64         `json:"native_value"`
	Fee            feeRequestBody `json:"fee"`
}

type quoteRequestBody struct {
	Asset         string         `json:"asset"`
	DstChainID    uint32         `json:"dst_chain_id"`
	DstAddress    string         `json:"dst_address"`
	Amount        uint64         `json:"amount"`
	UseAltPayment bool           `json:"use_alt_payment"`
	AdapterParams string         `json:"adapter_params"`
	Fee           feeRequestBody `json:"fee"`
}

// Send handles POST /api/bridge/send requests.
func (h *BridgeHandler) Send(c *fiber.Ctx) error {
	return h.send(c, false)
}

// SendFixed handles POST /api/bridge/send-fixed requests; the destination
// must decode to exactly 32 bytes.
func (h *BridgeHandler) SendFixed(c *fiber.Ctx) error {
	return h.send(c, true)
}

func (h *BridgeHandler) send(c *fiber.Ctx, fixed bool) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var body sendRequestBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if body.Asset == "" || body.Amount == 0 {
		return response.BadRequest(c, "asset and amount are required")
	}

	dstAddress, err := decodeHex(body.DstAddress)
	if err != nil {
		return response.BadRequest(c, "invalid destination address")
	}
	adapterParams, err := decodeHex(body.AdapterParams)
	if err != nil {
		return response.BadRequest(c, "invalid adapter params")
	}

	req := gateway.SendRequest{
		Asset:          body.Asset,
		DstChainID:     body.DstChainID,
		DstAddress:     dstAddress,
		Amount:         body.Amount,
		MinNetAmount:   body.MinNetAmount,
		RefundAddress:  body.RefundAddress,
		PaymentAddress: body.PaymentAddress,
		AdapterParams:  adapterParams,
		NativeValue:    body.NativeValue,
		Fee: gateway.FeeRequest{
			CallerRate:   rates.BasisPoints(body.Fee.CallerRateBps),
			FeeRecipient: body.Fee.FeeRecipient,
			PartnerID:    body.Fee.PartnerID,
		},
	}

	var receipt *gateway.Receipt
	if fixed {
		receipt, err = h.service.SendFixed(c.Context(), claims, req)
	} else {
		receipt, err = h.service.Send(c.Context(), claims, req)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return response.Success(c, "transfer queued", receipt)
}

// Quote handles POST /api/bridge/quote requests. Pure: no state changes.
func (h *BridgeHandler) Quote(c *fiber.Ctx) error {
	return h.quote(c, false)
}

// QuoteFixed handles POST /api/bridge/quote-fixed requests.
func (h *BridgeHandler) QuoteFixed(c *fiber.Ctx) error {
	return h.quote(c, true)
}

func (h *BridgeHandler) quote(c *fiber.Ctx, fixed bool) error {
	var body quoteRequestBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if body.Asset == "" {
		return response.BadRequest(c, "asset is required")
	}

	dstAddress, err := decodeHex(body.DstAddress)
	if err != nil {
		return response.BadRequest(c, "invalid destination address")
	}
	adapterParams, err := decodeHex(body.AdapterParams)
	if err != nil {
		return response.BadRequest(c, "invalid adapter params")
	}

	req := gateway.QuoteRequest{
		Asset:         body.Asset,
		DstChainID:    body.DstChainID,
		DstAddress:    dstAddress,
		Amount:        body.Amount,
		UseAltPayment: body.UseAltPayment,
		AdapterParams: adapterParams,
		Fee: gateway.FeeRequest{
			CallerRate: rates.BasisPoints(body.Fee.CallerRateBps),
			PartnerID:  body.Fee.PartnerID,
		},
	}

	var result *gateway.QuoteResult
	if fixed {
		result, err = h.service.QuoteFixed(c.Context(), req)
	} else {
		result, err = h.service.Quote(c.Context(), req)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return response.Success(c, "quote", result)
}

func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gateway.ErrUnauthorized), errors.Is(err, rates.ErrUnauthorized):
		return response.Forbidden(c, err.Error())
	case errors.Is(err, gateway.ErrReentrantCall):
		return response.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, rates.ErrInvalidRate),
		errors.Is(err, feeengine.ErrFeeRateExceeded),
		errors.Is(err, gateway.ErrSlippageExceeded),
		errors.Is(err, gateway.ErrInvalidDestination),
		errors.Is(err, gateway.ErrMissingFeeRecipient),
		errors.Is(err, gateway.ErrTransferFailed):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalError(c, "request failed")
	}
}
