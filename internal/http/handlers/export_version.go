package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/claimline-backend/internal/http/response"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/services"
)

type ExportVersionHandler struct {
	exports services.ExportVersionService
}

func NewExportVersionHandler(exports services.ExportVersionService) *ExportVersionHandler {
	return &ExportVersionHandler{exports: exports}
}

type createExportVersionRequest struct {
	VariantIDs []string `json:"variantIds" binding:"required,min=1,uniqueids,dive,required,uuid"`
	Status     string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// POST /api/export-versions
func (h *ExportVersionHandler) CreateExportVersion(c *gin.Context) {
	var req createExportVersionRequest
	if !bindJSON(c, &req) {
		return
	}
	status := types.ExportStatus(req.Status)
	if status == "" {
		status = types.ExportStatusDraft
	}
	ev, err := h.exports.Create(c.Request.Context(), domainagg.CreateExportVersionInput{
		VariantIDs: parseUUIDs(req.VariantIDs),
		Status:     status,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, ev)
}

// GET /api/export-versions/:id
func (h *ExportVersionHandler) GetExportVersion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	ev, err := h.exports.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, ev)
}
