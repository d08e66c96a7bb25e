package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crmbridge/acrm-cust/customer/dal"
	"github.com/crmbridge/acrm-cust/customer/domain"
	"github.com/crmbridge/acrm-cust/customer/service"
	"github.com/crmbridge/acrm-cust/framework/web"
	"github.com/crmbridge/acrm-cust/logger"
)

// Validation errors of the request envelope. The wording is part of the
// interface contract with the telephony integration.
var (
	ErrUnresolvedFunction = errors.New("Can't resolve target function")
	ErrEmptyData          = errors.New("Data must not be empty")
	ErrInvalidBody        = errors.New("Request body must be valid JSON")
)

func errEmptyDataset(field string) error {
	return fmt.Errorf("Dataset for <%s> must not be empty", field)
}

type CustomerHandler struct {
	l   logger.Provider
	svc service.CustomerService
}

func NewCustomerHandler(l logger.Provider, svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		l:   l,
		svc: svc,
	}
}

// CallCustomerSearch resolves an inbound caller number to at most one
// contact record.
func (h *CustomerHandler) CallCustomerSearch(ctx *gin.Context) error {
	var req domain.LookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(ErrInvalidBody, http.StatusBadRequest)
	}

	if req.Function != domain.FunctionCallCustomerSearch {
		return h.badRequest(ctx, ErrUnresolvedFunction, &req)
	}

	if req.Data == nil {
		return h.badRequest(ctx, ErrEmptyData, &req)
	}

	if req.Data.Anrufer == "" {
		return h.badRequest(ctx, errEmptyDataset("anrufer"), &req)
	}

	record, err := h.svc.SearchByCaller(ctx, req.Data.Anrufer)
	if err != nil {
		return h.translateError(ctx, err, &req)
	}

	return web.RespondOK(ctx, record)
}

// Live dispatches the two live operations of the telephony integration:
// candidate search and contact verification.
func (h *CustomerHandler) Live(ctx *gin.Context) error {
	var req domain.LookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(ErrInvalidBody, http.StatusBadRequest)
	}

	switch req.Function {
	case domain.FunctionSucheKontakte:
		return h.findCandidates(ctx, &req)
	case domain.FunctionUeberpruefeKontakt:
		return h.verifyContact(ctx, &req)
	default:
		return h.badRequest(ctx, ErrUnresolvedFunction, &req)
	}
}

func (h *CustomerHandler) findCandidates(ctx *gin.Context, req *domain.LookupRequest) error {
	if req.Data == nil {
		return h.badRequest(ctx, ErrEmptyData, req)
	}

	records, err := h.svc.FindCandidates(ctx, req.Data)
	if err != nil {
		return h.translateError(ctx, err, req)
	}

	return web.RespondOK(ctx, gin.H{"liste": records})
}

func (h *CustomerHandler) verifyContact(ctx *gin.Context, req *domain.LookupRequest) error {
	if req.Data == nil {
		return h.badRequest(ctx, ErrEmptyData, req)
	}

	if req.Data.ContactID == "" {
		return h.badRequest(ctx, errEmptyDataset(domain.ContactIDKey), req)
	}

	record, err := h.svc.VerifyContact(ctx, req.Data.ContactID)
	if err != nil {
		return h.translateError(ctx, err, req)
	}

	return web.RespondOK(ctx, record)
}

// badRequest logs and rejects a failed validation check, echoing the
// offending request body for diagnosis.
func (h *CustomerHandler) badRequest(ctx *gin.Context, err error, req *domain.LookupRequest) error {
	h.l(ctx).Printf("400 - %s - function %q", err, req.Function)

	return web.NewRequestErrorWithBody(err, http.StatusBadRequest, req)
}

// translateError maps pipeline failures onto the response taxonomy:
// malformed phone input is the caller's fault, a backend status is
// surfaced as such, everything else stays generic.
func (h *CustomerHandler) translateError(ctx *gin.Context, err error, req *domain.LookupRequest) error {
	if errors.Is(err, service.ErrInvalidPhone) {
		return h.badRequest(ctx, err, req)
	}

	var statusErr *dal.StatusError
	if errors.As(err, &statusErr) {
		h.l(ctx).Errorf("search backend failure: %s", statusErr)

		return web.NewRequestErrorWithBody(statusErr, http.StatusInternalServerError, req)
	}

	h.l(ctx).Errorf("lookup failed: %v", err)

	return web.NewRequestErrorWithBody(web.ErrUnexpected, http.StatusInternalServerError, req)
}
