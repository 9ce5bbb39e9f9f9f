package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/models"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/middleware"
)

type CartHandler struct {
	carts *marketplace.CartService
}

type addItemRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	IsRental   bool   `json:"isRental"`
	RentalDays int    `json:"rentalDays"`
}

func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), middleware.UserID(c), marketplace.AddItemInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		IsRental:   req.IsRental,
		RentalDays: req.RentalDays,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, cart)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.carts.UpdateItem(c.Request.Context(), middleware.UserID(c), c.Param("itemId"), req.Quantity)
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.carts.RemoveItem(c.Request.Context(), middleware.UserID(c), c.Param("itemId"))
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, cart)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		failFor(c, err)
		return
	}
	ok(c, gin.H{"items": []models.PopulatedCartItem{}})
}
