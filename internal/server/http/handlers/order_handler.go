package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
	"github.com/ChristianPavilonis/orderdesk/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders. Any id supplied in the body is ignored; a
// posted order is always inserted as new.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusUnprocessableEntity, err.Error())
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.Amount, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /orders. An empty store yields an empty JSON array, not
// null.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Status == "" {
		c.String(http.StatusUnprocessableEntity, "missing field status")
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Delete handles DELETE /orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	var id int64
	if order.ID != nil {
		id = *order.ID
	}
	return dto.OrderResponse{
		ID:     id,
		Amount: order.Amount,
		Status: string(order.Status),
	}
}
