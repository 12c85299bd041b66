package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "ordemfacil/internal/adapter/http/dto/request"
	response "ordemfacil/internal/adapter/http/dto/response"
	"ordemfacil/internal/adapter/http/middleware"
	"ordemfacil/internal/adapter/spreadsheet"
	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"
	"ordemfacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidOrderID      = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
)

// OrderHandler handles the service-order collection, its audit log and the
// snapshot import/export surface.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// List godoc
// @Summary  List orders, optionally filtered
// @Tags     orders
// @Produce  json
// @Security Bearer
// @Param    status query string false "status filter, ignored while q is set"
// @Param    q query string false "free text over client, equipment and defect"
// @Success  200 {array} entities.ServiceOrder
// @Router   /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.usecase.Filter(c.Request.Context(), c.Query("status"), c.Query("q"))
	c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary  Fetch one order
// @Tags     orders
// @Produce  json
// @Security Bearer
// @Param    id path int true "order id"
// @Success  200 {object} entities.ServiceOrder
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create godoc
// @Summary  Open a new service order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body request.OrderRequest true "order fields, id assigned by the store"
// @Success  201 {object} entities.ServiceOrder
// @Failure  400 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Add(c.Request.Context(), middleware.Actor(c), payload.ToEntity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Patch godoc
// @Summary  Partially update an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id path int true "order id"
// @Param    payload body entities.ServiceOrderPatch true "fields to change"
// @Success  200 {object} entities.ServiceOrder
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [patch]
func (h *OrderHandler) Patch(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var patch entities.ServiceOrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), middleware.Actor(c), id, patch)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete godoc
// @Summary  Delete an order
// @Tags     orders
// @Produce  json
// @Security Bearer
// @Param    id path int true "order id"
// @Success  200 {object} response.MessageResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.usecase.Remove(c.Request.Context(), middleware.Actor(c), id); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "order deleted"})
}

// Logs godoc
// @Summary  List the audit log
// @Tags     orders
// @Produce  json
// @Security Bearer
// @Success  200 {array} entities.AuditLog
// @Router   /logs [get]
func (h *OrderHandler) Logs(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Logs(c.Request.Context()))
}

// Export godoc
// @Summary  Export the full orders snapshot
// @Tags     orders
// @Produce  json
// @Security Bearer
// @Success  200 {object} entities.Snapshot
// @Router   /orders/export [get]
func (h *OrderHandler) Export(c *gin.Context) {
	data, err := h.usecase.ExportSnapshot(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// LoadSnapshot godoc
// @Summary  Replace all local state with an exported snapshot
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.MessageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /orders/snapshot [post]
func (h *OrderHandler) LoadSnapshot(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if err := h.usecase.LoadSnapshot(c.Request.Context(), middleware.Actor(c), data); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "snapshot loaded"})
}

// ImportSpreadsheet godoc
// @Summary  Bulk-import orders from an xlsx upload, replacing the collection
// @Tags     orders
// @Accept   multipart/form-data
// @Produce  json
// @Security Bearer
// @Param    file formData file true "xlsx workbook"
// @Param    header_row formData int false "1-based header row (default 1)"
// @Param    data_start_row formData int false "1-based first data row (default 2)"
// @Success  200 {object} response.ImportResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /orders/import [post]
func (h *OrderHandler) ImportSpreadsheet(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("MISSING_FILE", "No spreadsheet file uploaded", http.StatusBadRequest).ToHTTPError())
		return
	}
	defer file.Close()

	headerRow := formInt(c, "header_row", 1)
	dataStartRow := formInt(c, "data_start_row", 2)

	rows, err := spreadsheet.ParseWorkbook(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainError("INVALID_SPREADSHEET", "Could not parse the spreadsheet", err, http.StatusBadRequest).ToHTTPError())
		return
	}
	orders, err := spreadsheet.MapRows(rows, headerRow, dataStartRow)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainError("INVALID_SPREADSHEET", err.Error(), err, http.StatusBadRequest).ToHTTPError())
		return
	}

	count, err := h.usecase.BulkImport(c.Request.Context(), middleware.Actor(c), orders)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ImportResponse{Imported: count})
}

func orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func formInt(c *gin.Context, field string, def int) int {
	v, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		return def
	}
	return v
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSnapshot):
		return pkg.NewDomainErrorSimple("INVALID_SNAPSHOT", "The payload is not a valid snapshot", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyImportPayload):
		return pkg.NewDomainErrorSimple("EMPTY_IMPORT", "No valid rows found to import", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
