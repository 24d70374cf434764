package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blueprint-registry/internal/domains/auth"
	"blueprint-registry/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// NONCE: POST /v1/auth/nonce
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Nonce(c *gin.Context) {
	var req auth.NonceRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Nonce(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, auth.ToHTTPStatus(err), auth.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// LOGIN: POST /v1/auth/login
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, auth.ToHTTPStatus(err), auth.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
