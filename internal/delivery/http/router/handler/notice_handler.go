package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoticeHandler holds dependencies for notice and badge handlers.
type NoticeHandler struct {
	uc usecase.NoticeUsecase
}

// NewNoticeHandler is the constructor for NoticeHandler, injected by Fx.
func NewNoticeHandler(uc usecase.NoticeUsecase) *NoticeHandler {
	return &NoticeHandler{
		uc: uc,
	}
}

// List returns published notices with the customer's read state. Guests
// see every notice unread.
func (h *NoticeHandler) List(c echo.Context) error {
	notices, err := h.uc.ListNotices(c.Request().Context(), middleware.CustomerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notices, "")
}

// UnreadCount returns how many published notices the customer has not read.
// Guests track no read state and always get zero.
func (h *NoticeHandler) UnreadCount(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return response.Success(c, http.StatusOK, map[string]int{"unread": 0}, "")
	}

	unread, err := h.uc.UnreadNoticeCount(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": unread}, "")
}

// ReadAll marks every published notice read for the customer.
func (h *NoticeHandler) ReadAll(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if err := h.uc.MarkAllRead(c.Request().Context(), *customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All notices marked read")
}

// Badge returns the combined unread indicator. Guests always get zeros.
func (h *NoticeHandler) Badge(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return response.Success(c, http.StatusOK, &usecase.UnreadBadge{}, "")
	}

	badge, err := h.uc.UnreadBadge(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badge, "")
}
