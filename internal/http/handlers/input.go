package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/claimline-backend/internal/http/response"
	"github.com/yungbote/claimline-backend/internal/services"
)

type InputHandler struct {
	inputs services.InputService
}

func NewInputHandler(inputs services.InputService) *InputHandler {
	return &InputHandler{inputs: inputs}
}

type createInputRequest struct {
	Source  string         `json:"source" binding:"required"`
	Payload map[string]any `json:"payload" binding:"required"`
}

// POST /api/inputs
func (h *InputHandler) CreateInput(c *gin.Context) {
	var req createInputRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := h.inputs.Create(c.Request.Context(), req.Source, req.Payload)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, in)
}

// GET /api/inputs
func (h *InputHandler) ListInputs(c *gin.Context) {
	list, err := h.inputs.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// GET /api/inputs/:id
func (h *InputHandler) GetInput(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	in, err := h.inputs.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, in)
}
