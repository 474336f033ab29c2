package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/domain/entity"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for bug/feedback report handlers.
type ReportHandler struct {
	uc         usecase.ReportUsecase
	identityUC usecase.IdentityUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, identityUC usecase.IdentityUsecase) *ReportHandler {
	return &ReportHandler{
		uc:         uc,
		identityUC: identityUC,
	}
}

// SubmitReportRequest files a bug or store complaint.
type SubmitReportRequest struct {
	Category    string `json:"category" validate:"required"`
	ReportType  string `json:"report_type"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Submit files a report. Guests can file too; their identity is
// synthesized from the session phone number.
func (h *ReportHandler) Submit(c echo.Context) error {
	var req SubmitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.sessionCustomer(c)
	if err != nil {
		return errors.WithStack(err)
	}

	report, err := h.uc.Submit(c.Request().Context(), customer, &usecase.ReportSubmission{
		Category:    entity.ReportCategory(req.Category),
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, report, "Report submitted")
}

// List returns the customer's reports, newest first. Guest reports carry
// no stable id and cannot be listed back.
func (h *ReportHandler) List(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return response.Success(c, http.StatusOK, []*entity.Report{}, "")
	}

	reports, err := h.uc.ListMyReports(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// ReadResponses marks every answered, unread report of the customer read.
func (h *ReportHandler) ReadResponses(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	updated, err := h.uc.MarkResponsesRead(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated}, "Responses marked read")
}

// sessionCustomer materializes the session identity as a customer entity.
func (h *ReportHandler) sessionCustomer(c echo.Context) (*entity.Customer, error) {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return entity.NewGuest(middleware.PhoneNumber(c)), nil
	}

	return h.identityUC.Refresh(c.Request().Context(), *customerID)
}
