package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/claimline-backend/internal/http/response"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/services"
)

type ClaimHandler struct {
	claims services.ClaimService
}

func NewClaimHandler(claims services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

type evidenceRequest struct {
	Source  string `json:"source" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type provenanceRequest struct {
	ActorType string `json:"actorType" binding:"required"`
	ActorID   string `json:"actorId" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type createClaimRequest struct {
	InputID    string            `json:"inputId" binding:"required,uuid"`
	Confidence string            `json:"confidence" binding:"required,oneof=low medium high"`
	Status     string            `json:"status" binding:"required,oneof=candidate verified rejected"`
	Evidences  []evidenceRequest `json:"evidences" binding:"dive"`
	Provenance provenanceRequest `json:"provenance"`
}

// POST /api/claims
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var req createClaimRequest
	if !bindJSON(c, &req) {
		return
	}
	in := domainagg.CreateClaimInput{
		InputID:    uuid.MustParse(req.InputID),
		Confidence: types.Confidence(req.Confidence),
		Status:     types.ClaimStatus(req.Status),
		Evidences:  make([]domainagg.EvidenceInput, 0, len(req.Evidences)),
		Provenance: domainagg.ProvenanceInput{
			ActorType: req.Provenance.ActorType,
			ActorID:   req.Provenance.ActorID,
			Action:    req.Provenance.Action,
		},
	}
	for _, ev := range req.Evidences {
		in.Evidences = append(in.Evidences, domainagg.EvidenceInput{Source: ev.Source, Content: ev.Content})
	}
	claim, err := h.claims.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, claim)
}

// GET /api/claims/:id
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claim, err := h.claims.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, claim)
}
