package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/middleware"
)

type ProductsHandler struct {
	products *marketplace.ProductService
}

func (h *ProductsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := h.products.List(c.Request.Context(), marketplace.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		Limit:    limit,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}

func (h *ProductsHandler) Featured(c *gin.Context) {
	list, err := h.products.Featured(c.Request.Context())
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, list)
}

func (h *ProductsHandler) ByCategory(c *gin.Context) {
	list, err := h.products.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}

func (h *ProductsHandler) Rentals(c *gin.Context) {
	list, err := h.products.Rentals(c.Request.Context())
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}

func (h *ProductsHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, product)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), middleware.UserID(c), fields)
	if err != nil {
		failFor(c, err)
		return
	}
	created(c, product)
}

type statusRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminComments string `json:"adminComments"`
}

func (h *ProductsHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.AdminComments)
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, product)
}

func (h *ProductsHandler) MyUploads(c *gin.Context) {
	list, err := h.products.MyUploads(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}

func (h *ProductsHandler) Pending(c *gin.Context) {
	list, err := h.products.Pending(c.Request.Context())
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}
