package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/betterprompt-cli/internal/contracts/v1/fixprompt"
	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceDescription = "AI Prompt Optimizer"

type handlers struct {
	optimizer ports.Optimizer
	logger    *zap.Logger
}

func (h *handlers) index(c *gin.Context) {
	c.JSON(http.StatusOK, fixprompt.IndexResponse{Service: fixprompt.ServiceName, Description: serviceDescription})
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, fixprompt.HealthResponse{Status: "healthy", Service: fixprompt.ServiceName})
}

func (h *handlers) notFound(c *gin.Context) {
	writeError(c, http.StatusNotFound, domain.MessageNotFound)
}

// fixPrompt accepts any JSON object. A missing or non-string "prompt" counts
// as empty.
func (h *handlers) fixPrompt(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, domain.MessageNoData)
		return
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil || len(body) == 0 {
		writeError(c, http.StatusBadRequest, domain.MessageNoData)
		return
	}

	prompt, _ := body["prompt"].(string)

	improved, err := h.optimizer.Optimize(c.Request.Context(), prompt)
	if err != nil {
		h.writeOptimizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, fixprompt.Response{ImprovedPrompt: improved})
}

func (h *handlers) writeOptimizeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var optimizeErr *domain.OptimizeError
	switch {
	case errors.Is(err, domain.ErrEmptyPrompt):
		writeError(c, http.StatusBadRequest, domain.MessageEmptyPrompt)
	case errors.Is(err, domain.ErrPromptTooLong):
		writeError(c, http.StatusBadRequest, domain.MessagePromptTooLong)
	case errors.As(err, &optimizeErr):
		writeError(c, http.StatusInternalServerError, optimizeErr.Message)
	default:
		h.logger.Error("optimize prompt", zap.Error(err))
		writeError(c, http.StatusInternalServerError, domain.MessageInternal)
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, fixprompt.ErrorResponse{Error: message})
}
