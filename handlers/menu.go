package handlers

import (
	"net/http"

	menuRepo "brewvoice/database/repository/menu"
	"brewvoice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenuHandler serves the catalog listing.
type MenuHandler struct {
	Repo   menuRepo.Repository
	Logger *zap.Logger
}

func NewMenuHandler(repo menuRepo.Repository, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{Repo: repo, Logger: logger}
}

// GetMenuHandler returns every orderable item with its price.
func (h *MenuHandler) GetMenuHandler(c *gin.Context) {
	items, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load menu", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load menu", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
