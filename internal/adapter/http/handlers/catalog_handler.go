package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "ordemfacil/internal/adapter/http/dto/request"
	response "ordemfacil/internal/adapter/http/dto/response"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"
	"ordemfacil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid catalog item payload", http.StatusBadRequest)

// CatalogHandler handles the services/products catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// List godoc
// @Summary  List catalog items
// @Tags     catalog
// @Produce  json
// @Security Bearer
// @Success  200 {array} entities.CatalogItem
// @Router   /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.List(c.Request.Context()))
}

// Create godoc
// @Summary  Add a catalog item
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body request.CatalogItemRequest true "item fields"
// @Success  201 {object} entities.CatalogItem
// @Failure  400 {object} pkg.HTTPError
// @Router   /catalog [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Patch godoc
// @Summary  Update a catalog item
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id path int true "item id"
// @Param    payload body entities.CatalogItemPatch true "fields to change"
// @Success  200 {object} entities.CatalogItem
// @Failure  404 {object} pkg.HTTPError
// @Router   /catalog/{id} [patch]
func (h *CatalogHandler) Patch(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var patch entities.CatalogItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary  Remove a catalog item
// @Tags     catalog
// @Produce  json
// @Security Bearer
// @Param    id path int true "item id"
// @Success  200 {object} response.MessageResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /catalog/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "item removed"})
}

// Export godoc
// @Summary  Export the catalog as a JSON array
// @Tags     catalog
// @Produce  json
// @Security Bearer
// @Success  200 {array} entities.CatalogItem
// @Router   /catalog/export [get]
func (h *CatalogHandler) Export(c *gin.Context) {
	data, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// Import godoc
// @Summary  Replace the catalog with an uploaded JSON array
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.ImportResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /catalog/import [post]
func (h *CatalogHandler) Import(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}
	count, err := h.usecase.Import(c.Request.Context(), data)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ImportResponse{Imported: count})
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_ITEM_ID", "Invalid catalog item id", http.StatusBadRequest).ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidItemKind),
		errors.Is(err, usecase.ErrInvalidItemPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCatalogPayload):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_PAYLOAD", "The payload is not a JSON array of catalog items", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
