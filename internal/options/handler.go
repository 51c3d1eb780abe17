package options

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/larkbridge-io/options-api/internal/api"
	"github.com/larkbridge-io/options-api/internal/lark"
	"github.com/larkbridge-io/options-api/internal/logger"
)

// Handler serves the dynamic-options endpoint consumed by the form host.
type Handler struct {
	service   *Service
	authToken string
	logger    *logger.Logger
}

func NewHandler(log *logger.Logger, authToken string, service *Service) *Handler {
	return &Handler{
		service:   service,
		authToken: authToken,
		logger:    log,
	}
}

// ProvideOptions handles POST on any path.
//
// Validation failures answer with their own statuses: 401 for a wrong
// secret, 400 for missing identifiers. Everything that fails past
// validation (the token exchange, the record read, an unreadable body)
// collapses into the one generic 500 envelope, with the cause recorded
// only in logs.
func (h *Handler) ProvideOptions(c *gin.Context) {
	var req OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to parse options request", "error", err.Error())
		c.JSON(http.StatusInternalServerError, api.Error(api.MsgInternalError))
		return
	}

	if req.Token != h.authToken {
		c.JSON(http.StatusUnauthorized, api.Error(api.MsgInvalidToken))
		return
	}

	if req.AppToken == "" || req.TableID == "" || req.FieldName == "" {
		c.JSON(http.StatusBadRequest, api.Error(api.MsgMissingParams))
		return
	}

	result, err := h.service.Options(c.Request.Context(), req.AppToken, req.TableID, req.FieldName)
	if err != nil {
		var authErr *lark.AuthError
		var fetchErr *lark.FetchError
		switch {
		case errors.As(err, &authErr):
			h.logger.Error("Upstream token exchange failed", "error", err.Error())
		case errors.As(err, &fetchErr):
			h.logger.Error("Upstream record fetch failed", "error", err.Error())
		default:
			h.logger.Error("Options assembly failed", "error", err.Error())
		}
		c.JSON(http.StatusInternalServerError, api.Error(api.MsgInternalError))
		return
	}

	c.JSON(http.StatusOK, api.Success(result))
}
