package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/domain/entity"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon lifecycle handlers.
type CouponHandler struct {
	uc usecase.CouponUsecase
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{
		uc: uc,
	}
}

// RedeemRequest carries the shared counter secret typed by staff.
type RedeemRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// List returns the customer's coupons partitioned by kind. Guests own no
// coupons and get an empty book.
func (h *CouponHandler) List(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return response.Success(c, http.StatusOK, &usecase.CouponBook{
			Stamp:    []*entity.Coupon{},
			Birthday: []*entity.Coupon{},
			Other:    []*entity.Coupon{},
		}, "")
	}

	book, err := h.uc.ListCoupons(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "")
}

// QR renders the coupon as a PNG for counter-side scanning.
func (h *CouponHandler) QR(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_COUPON_ID", "Invalid coupon id")
	}

	customerID := middleware.CustomerID(c)
	png, err := h.uc.CouponQR(c.Request().Context(), *customerID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Redeem deletes the coupon after the staff secret checks out.
func (h *CouponHandler) Redeem(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_COUPON_ID", "Invalid coupon id")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	customerID := middleware.CustomerID(c)
	result, err := h.uc.Redeem(c.Request().Context(), *customerID, couponID, req.Secret)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Coupon redeemed")
}
