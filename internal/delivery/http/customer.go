package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meal-admin/internal/models"
	"meal-admin/internal/service"
)

type listCustomersResponse struct {
	Data []models.Customer `json:"data"`
}

// ListCustomers
// @Summary ListCustomers
// @Description Returns all subscription customers
// @ID list-customers
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} listCustomersResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.svc.Customers.List()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, listCustomersResponse{Data: customers})
}

// GetCustomer
// @Summary GetCustomer
// @Description Returns one customer by id
// @ID get-customer
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "customer id"
// @Success 200 {object} models.Customer
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/customers/{id} [get]
func (h *Handler) GetCustomer(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	customer, err := h.svc.Customers.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "customer not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer
// @Summary CreateCustomer
// @Description Creates a subscription customer
// @ID create-customer
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.Customer true "customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/customers [post]
func (h *Handler) CreateCustomer(c *gin.Context) {
	var in models.Customer
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.svc.Customers.Create(&in); err != nil {
		if errors.Is(err, service.ErrValidation) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, in)
}

// UpdateCustomer
// @Summary UpdateCustomer
// @Description Updates customer profile and recurrence settings
// @ID update-customer
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "customer id"
// @Param input body models.Customer true "customer"
// @Success 200 {object} models.Customer
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/customers/{id} [put]
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	var in models.Customer
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body")
		return
	}
	in.ID = id

	if err := h.svc.Customers.Update(&in); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "customer not found")
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, in)
}
