package handler

import (
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blueprint-registry/internal/domains/reveal"
	"blueprint-registry/internal/shared/response"
)

type RevealHandler struct {
	authenticator *reveal.Authenticator
}

func NewRevealHandler(authenticator *reveal.Authenticator) *RevealHandler {
	return &RevealHandler{
		authenticator: authenticator,
	}
}

// RevealRequest carries the hex-encoded signature the wallet produced over
// the session challenge. An empty signature is a declined request.
type RevealRequest struct {
	Signature string `json:"signature"`
}

// RevealResponse returns the decoded price for one display session. The
// server keeps no copy; hiding the price again is the client dropping it.
type RevealResponse struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

// ════════════════════════════════════════════════════════════════
// SESSION: GET /v1/reveal/session
// ════════════════════════════════════════════════════════════════

func (h *RevealHandler) Session(c *gin.Context) {
	params := h.authenticator.Session()

	response.Success(c, http.StatusOK, gin.H{
		"params":  params,
		"message": params.ChallengeMessage(),
	})
}

// ════════════════════════════════════════════════════════════════
// REVEAL: POST /v1/blueprints/:id/reveal
// ════════════════════════════════════════════════════════════════

func (h *RevealHandler) Reveal(c *gin.Context) {
	id := c.Param("id")

	var req RevealRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(req.Signature, "0x"))
	if err != nil {
		response.BadRequest(c, "signature must be hex encoded")
		return
	}

	price, err := h.authenticator.RevealWithSignature(c.Request.Context(), id, sig)
	if err != nil {
		response.ErrorResponse(c, reveal.ToHTTPStatus(err), reveal.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, RevealResponse{ID: id, Price: price})
}
