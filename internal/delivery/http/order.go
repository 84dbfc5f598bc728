package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"meal-admin/internal/models"
	"meal-admin/internal/service"
)

type listOrdersResponse struct {
	Data []models.Order `json:"data"`
}

type transitionRequest struct {
	Status models.OrderStatus `json:"status"`
}

// ListOrders
// @Summary ListOrders
// @Description Returns orders, newest first; supports limit/offset paging
// @ID list-orders
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} listOrdersResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := h.svc.Orders.List(limit, offset)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, listOrdersResponse{Data: orders})
}

// GetOrder
// @Summary GetOrder
// @Description Returns one order by id
// @ID get-order
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	order, err := h.svc.Orders.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

// TransitionOrder
// @Summary TransitionOrder
// @Description Moves an order to the next lifecycle status. Courier role required for in_delivery and delivered.
// @ID transition-order
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body transitionRequest true "target status"
// @Success 200 {object} models.Order
// @Failure 400,403,404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/status [patch]
func (h *Handler) TransitionOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	var in transitionRequest
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body")
		return
	}

	order, err := h.svc.Orders.Transition(id, in.Status, actor(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusBadRequest, "unknown status")
		case errors.Is(err, service.ErrForbidden):
			newErrorResponse(c, http.StatusForbidden, "courier role required")
		case errors.Is(err, service.ErrBadTransition):
			newErrorResponse(c, http.StatusConflict, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
