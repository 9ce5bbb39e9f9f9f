package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/middleware"
)

type OrdersHandler struct {
	orders *marketplace.OrderService
}

type checkoutRequest struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	DeliveryNotes   string `json:"deliveryNotes"`
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), middleware.UserID(c), marketplace.CheckoutInput{
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		DeliveryNotes:   req.DeliveryNotes,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	created(c, order)
}

func (h *OrdersHandler) ListMine(c *gin.Context) {
	list, err := h.orders.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}

func (h *OrdersHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, order)
}

func (h *OrdersHandler) Pay(c *gin.Context) {
	order, err := h.orders.MarkPaid(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, order)
}
