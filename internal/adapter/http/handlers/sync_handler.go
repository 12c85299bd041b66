package handlers

import (
	"net/http"

	response "ordemfacil/internal/adapter/http/dto/response"
	"ordemfacil/internal/adapter/http/middleware"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"
	"ordemfacil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid sync configuration payload", http.StatusBadRequest)

// SyncHandler exposes the sync configuration and the manual push trigger.

type SyncHandler struct {
	orders  usecase.IOrderUseCase
	catalog usecase.ICatalogUseCase
}

func NewSyncHandler(orders usecase.IOrderUseCase, catalog usecase.ICatalogUseCase) *SyncHandler {
	return &SyncHandler{orders: orders, catalog: catalog}
}

// GetConfig godoc
// @Summary  Read the sync configuration
// @Tags     sync
// @Produce  json
// @Security Bearer
// @Success  200 {object} entities.DatabaseConfig
// @Router   /sync/config [get]
func (h *SyncHandler) GetConfig(c *gin.Context) {
	cfg := h.orders.Config(c.Request.Context())
	// The stored password never leaves the server.
	cfg.Password = ""
	c.JSON(http.StatusOK, cfg)
}

// PutConfig godoc
// @Summary  Replace the sync configuration
// @Tags     sync
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body entities.DatabaseConfig true "locations, auto-sync flag and credentials"
// @Success  200 {object} response.MessageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /sync/config [put]
func (h *SyncHandler) PutConfig(c *gin.Context) {
	var cfg entities.DatabaseConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}
	if err := h.orders.SetConfig(c.Request.Context(), middleware.Actor(c), cfg); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "configuration updated"})
}

// SyncNow godoc
// @Summary  Push both snapshots to their configured remote locations now
// @Tags     sync
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.SyncResponse
// @Router   /sync/now [post]
func (h *SyncHandler) SyncNow(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, response.SyncResponse{
		Orders:  h.orders.SyncNow(ctx),
		Catalog: h.catalog.SyncNow(ctx),
	})
}

// Pull godoc
// @Summary  Replace local orders state with the remote snapshot
// @Tags     sync
// @Produce  json
// @Security Bearer
// @Success  200 {object} interfaces.SyncResult
// @Router   /sync/pull [post]
func (h *SyncHandler) Pull(c *gin.Context) {
	res := h.orders.PullRemote(c.Request.Context(), middleware.Actor(c))
	c.JSON(http.StatusOK, res)
}
