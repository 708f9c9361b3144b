package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/models"
	"github.com/sstarkov/styleshop/internal/search"
)

// ProductHandler serves the catalog. ES is optional; without it the search
// route falls back to a substring match in the database.
type ProductHandler struct {
	DB    *gorm.DB
	ES    *elasticsearch.Client
	Index string
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products := make([]models.Product, 0)
	if err := h.DB.Find(&products).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}
	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	category := c.Param("category")

	products := make([]models.Product, 0)
	if err := h.DB.Where("category = ?", category).Find(&products).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, products)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return respondError(c, http.StatusBadRequest, "Search query is required")
	}

	if h.ES != nil {
		products, err := search.Search(c.Request().Context(), h.ES, h.Index, query)
		if err != nil {
			return respondError(c, http.StatusInternalServerError, err.Error())
		}
		return respondData(c, http.StatusOK, products)
	}

	pattern := "%" + strings.ToLower(query) + "%"
	products := make([]models.Product, 0)
	if err := h.DB.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&products).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}
	return respondData(c, http.StatusOK, products)
}
