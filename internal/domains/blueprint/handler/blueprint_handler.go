package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blueprint-registry/internal/domains/blueprint"
	"blueprint-registry/internal/shared/middleware"
	"blueprint-registry/internal/shared/response"
)

type BlueprintHandler struct {
	service blueprint.Service
}

func NewBlueprintHandler(svc blueprint.Service) *BlueprintHandler {
	return &BlueprintHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/blueprints?search=&status=
// ════════════════════════════════════════════════════════════════

func (h *BlueprintHandler) List(c *gin.Context) {
	var filter blueprint.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, blueprint.ToHTTPStatus(err), blueprint.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/blueprints/:id
// ════════════════════════════════════════════════════════════════

func (h *BlueprintHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, blueprint.ToHTTPStatus(err), blueprint.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/blueprints
// ════════════════════════════════════════════════════════════════

func (h *BlueprintHandler) Create(c *gin.Context) {
	var req blueprint.CreateBlueprintRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	owner := middleware.CallerAddress(c)
	resp, err := h.service.Create(c.Request.Context(), owner, &req)
	if err != nil {
		response.ErrorResponse(c, blueprint.ToHTTPStatus(err), blueprint.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// LIFECYCLE: POST /v1/blueprints/:id/publish
// ════════════════════════════════════════════════════════════════

func (h *BlueprintHandler) Publish(c *gin.Context) {
	id := c.Param("id")
	caller := middleware.CallerAddress(c)

	resp, err := h.service.Publish(c.Request.Context(), id, caller)
	if err != nil {
		response.ErrorResponse(c, blueprint.ToHTTPStatus(err), blueprint.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// LIFECYCLE: POST /v1/blueprints/:id/sell
// ════════════════════════════════════════════════════════════════

func (h *BlueprintHandler) MarkSold(c *gin.Context) {
	id := c.Param("id")
	caller := middleware.CallerAddress(c)

	resp, err := h.service.MarkSold(c.Request.Context(), id, caller)
	if err != nil {
		response.ErrorResponse(c, blueprint.ToHTTPStatus(err), blueprint.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// STATS: GET /v1/blueprints/stats
// ════════════════════════════════════════════════════════════════

func (h *BlueprintHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, blueprint.ToHTTPStatus(err), blueprint.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
