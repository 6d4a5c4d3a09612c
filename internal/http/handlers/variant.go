package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/claimline-backend/internal/http/response"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/services"
)

type VariantHandler struct {
	variants services.VariantService
}

func NewVariantHandler(variants services.VariantService) *VariantHandler {
	return &VariantHandler{variants: variants}
}

type createVariantRequest struct {
	Target   string   `json:"target" binding:"required,oneof=draft section bullet"`
	ClaimIDs []string `json:"claimIds" binding:"dive,required,uuid"`
}

// POST /api/variants
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	var req createVariantRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.variants.Create(c.Request.Context(), domainagg.CreateVariantInput{
		Target:   types.VariantTarget(req.Target),
		ClaimIDs: parseUUIDs(req.ClaimIDs),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, v)
}

// GET /api/variants/:id
func (h *VariantHandler) GetVariant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	v, err := h.variants.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, v)
}
