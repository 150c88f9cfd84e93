package handler

import (
	"net/http"

	"github.com/osse101/giftroll/internal/cases"
	"github.com/osse101/giftroll/internal/domain"
)

type CasesHandler struct {
	service cases.Service
}

func NewCasesHandler(service cases.Service) *CasesHandler {
	return &CasesHandler{service: service}
}

// HandleList returns the case catalog
// @Summary List cases
// @Tags cases
// @Produce json
// @Success 200 {array} domain.Case
// @Failure 400 {object} map[string]string
// @Router /mutants/cases [get]
func (h *CasesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Catalog())
}

// HandleCheckAccess always answers 200 with {access, message}
// @Summary Check case access
// @Tags cases
// @Accept json
// @Produce json
// @Param request body domain.CaseAccessRequest true "Request"
// @Success 200 {object} domain.CaseAccess
// @Failure 400 {object} map[string]string
// @Router /mutants/check [post]
func (h *CasesHandler) HandleCheckAccess(w http.ResponseWriter, r *http.Request) {
	var req domain.CaseAccessRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Check case access"); err != nil {
		return
	}

	access, err := h.service.CheckAccess(r.Context(), req.TelegramID)
	if err != nil {
		respondServiceError(w, r, "Check case access", err)
		return
	}
	respondJSON(w, http.StatusOK, access)
}

// HandleOpen serves POST /api/mutants/open
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Param request body domain.OpenCaseRequest true "Request"
// @Success 200 {object} domain.CaseResult
// @Failure 400 {object} map[string]string
// @Router /mutants/open [post]
func (h *CasesHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req domain.OpenCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
		return
	}

	res, err := h.service.OpenCase(r.Context(), req.TelegramID, req.CaseType)
	if err != nil {
		respondServiceError(w, r, "Open case", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleFreeCaseStatus serves GET /api/free_case_status/{id}
// @Summary Get free case cooldown
// @Tags cases
// @Produce json
// @Param id path int true "Telegram id"
// @Success 200 {object} domain.FreeCaseStatus
// @Failure 400 {object} map[string]string
// @Router /free_case_status/{id} [get]
func (h *CasesHandler) HandleFreeCaseStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	status, err := h.service.FreeCaseStatus(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Free case status", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
