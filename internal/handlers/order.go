package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/jwtmiddleware"
	"github.com/sstarkov/styleshop/internal/models"
	"github.com/sstarkov/styleshop/internal/mykafka"
)

type OrderHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type orderItemRequest struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  uint    `json:"quantity"`
}

type createOrderRequest struct {
	TotalAmount     float64            `json:"totalAmount"`
	PaymentMethod   string             `json:"paymentMethod"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	BillingAddress  models.Address     `json:"billingAddress"`
	Items           []orderItemRequest `json:"items"`
}

type paymentResponse struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      uint   `json:"orderId"`
}

func (h *OrderHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(event["orderID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

// CreateOrder writes the order row and its items in one transaction. The
// total comes from the caller and is not recomputed from the items.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := jwtmiddleware.UserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "Missing or invalid token")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	order := models.Order{
		UserID:          userID,
		TotalAmount:     req.TotalAmount,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		CreatedAt:       time.Now(),
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, it := range req.Items {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     it.Price,
				Quantity:  it.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if txErr != nil {
		return respondError(c, http.StatusInternalServerError, txErr.Error())
	}

	if order.Items == nil {
		order.Items = make([]models.OrderItem, 0)
	}

	h.publish(c, map[string]interface{}{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  userID,
		"total":   order.TotalAmount,
	})

	return respondData(c, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := jwtmiddleware.UserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "Missing or invalid token")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Order not found")
	}

	var order models.Order
	if err := h.DB.Preload("Items").First(&order, id).Error; err != nil {
		return respondError(c, http.StatusNotFound, "Order not found")
	}
	if order.UserID != userID {
		return respondError(c, http.StatusForbidden, "Unauthorized")
	}

	return respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) GetUserOrders(c echo.Context) error {
	userID, err := jwtmiddleware.UserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "Missing or invalid token")
	}

	orders := make([]models.Order, 0)
	if err := h.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respondData(c, http.StatusOK, orders)
}

// ProcessPayment simulates a successful charge. It flips the two status
// fields and hands back a throwaway confirmation secret; there is no
// gateway call and no guard against paying the same order again.
func (h *OrderHandler) ProcessPayment(c echo.Context) error {
	userID, err := jwtmiddleware.UserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "Missing or invalid token")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Order not found")
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return respondError(c, http.StatusNotFound, "Order not found")
	}
	if order.UserID != userID {
		return respondError(c, http.StatusForbidden, "Unauthorized")
	}

	var req struct {
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	order.PaymentStatus = models.PaymentStatusPaid
	order.Status = models.OrderStatusProcessing
	if err := h.DB.Save(&order).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]interface{}{
		"type":            "order_paid",
		"orderID":         order.ID,
		"userID":          userID,
		"paymentMethodID": req.PaymentMethodID,
	})

	return respondData(c, http.StatusOK, paymentResponse{
		ClientSecret: "demo_secret_" + uuid.NewString(),
		OrderID:      order.ID,
	})
}
