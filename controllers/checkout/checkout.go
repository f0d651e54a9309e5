package checkoutControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Arobaczewski/eCommerce-sub000/mailer"
	"github.com/Arobaczewski/eCommerce-sub000/models"
)

// -------- Request Structs --------

type ValidateStepRequest struct {
	Step   int               `json:"step" binding:"required,min=1,max=3"`
	Fields map[string]string `json:"fields" binding:"required"`
}

type CheckoutRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	NameOnCard string `json:"nameOnCard"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

func (r CheckoutRequest) fields() map[string]string {
	return map[string]string{
		"firstName":  r.FirstName,
		"lastName":   r.LastName,
		"email":      r.Email,
		"address":    r.Address,
		"city":       r.City,
		"state":      r.State,
		"zipCode":    r.ZipCode,
		"nameOnCard": r.NameOnCard,
		"cardNumber": r.CardNumber,
		"expiryDate": r.ExpiryDate,
		"cvv":        r.CVV,
	}
}

// -------- Helpers --------

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// processingDelay is the simulated order-processing pause before an order is
// marked confirmed.
func processingDelay() time.Duration {
	if ms, err := strconv.Atoi(os.Getenv("CHECKOUT_PROCESSING_DELAY")); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return 1500 * time.Millisecond
}

func itemsSummary(items []models.OrderItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("%d× %s", item.Quantity, item.ProductName)
		var variant []string
		if item.Color != "" {
			variant = append(variant, "Color: "+item.Color)
		}
		if item.Size != "" {
			variant = append(variant, "Size: "+item.Size)
		}
		if len(variant) > 0 {
			line += " (" + strings.Join(variant, ", ") + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// -------- Handlers --------

// POST /checkout/validate
//
// Bulk-validates the fields of one wizard step. The client blocks step
// advancement and focuses the first invalid field when this fails.
func ValidateCheckoutStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateStepRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fieldErrors, firstInvalid := ValidateStep(req.Step, req.Fields)
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"valid":         false,
				"errors":        fieldErrors,
				"first_invalid": firstInvalid,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"valid": true})
	}
}

// POST /checkout
//
// Validates the full checkout form, snapshots the session cart into an order
// inside a locking transaction, runs the simulated processing delay, then
// sends the business notification and customer acknowledgment emails in
// sequence. An email failure after the order is persisted surfaces as one
// generic failure with no compensation; the partial delivery is logged.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID, _ := sessionIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fieldErrors, firstInvalid := ValidateStep(StepReview, req.fields())
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"valid":         false,
				"errors":        fieldErrors,
				"first_invalid": firstInvalid,
			})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := models.Order{
			Ref:       generateOrderRef(),
			SessionID: sessionID,
			Status:    models.OrderStatusPending,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     strings.TrimSpace(req.Email),
			Address:   strings.TrimSpace(req.Address),
			City:      strings.TrimSpace(req.City),
			State:     strings.TrimSpace(req.State),
			ZipCode:   strings.TrimSpace(req.ZipCode),
			CardLast4: cardLast4(req.CardNumber),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var orderItems []models.OrderItem
			for _, item := range cart.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", item.ProductID).Error; err != nil {
					return err
				}

				if product.Stock < item.Quantity {
					return errors.New("insufficient stock for product: " + item.ProductName)
				}

				// Deduct stock
				product.Stock -= item.Quantity
				product.InStock = product.Stock > 0
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				orderItems = append(orderItems, models.OrderItem{
					ProductID:    item.ProductID,
					ProductName:  item.ProductName,
					ProductImage: item.ProductImage,
					ProductPrice: item.ProductPrice,
					Color:        item.Color,
					Size:         item.Size,
					Quantity:     item.Quantity,
				})
			}

			order.Items = orderItems
			order.TotalAmount = models.OrderTotal(orderItems)

			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			// Successful checkout empties the cart
			return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			if strings.HasPrefix(err.Error(), "insufficient stock") {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// Simulated processing before the order flips to confirmed
		time.Sleep(processingDelay())

		params := mailer.Params{
			"order_ref":      order.Ref,
			"customer_name":  order.FirstName + " " + order.LastName,
			"customer_email": order.Email,
			"ship_to": fmt.Sprintf("%s, %s, %s %s",
				order.Address, order.City, order.State, order.ZipCode),
			"items": itemsSummary(order.Items),
			"total": models.FormatPrice(order.TotalAmount),
		}

		// Two sequential sends: business notice first, then the customer
		// acknowledgment. The order stays pending if either send fails, and
		// the user retries by resubmitting contact with support.
		if err := mailer.Send(mailer.OrderNoticeTemplate(), params); err != nil {
			log.Printf("❌ Order %s: business notification failed: %v", order.Ref, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Order processing failed. Please try again."})
			return
		}
		if err := mailer.Send(mailer.OrderAckTemplate(), params); err != nil {
			// The business notice already went out; nothing compensates it.
			log.Printf("❌ Order %s: customer acknowledgment failed after business notice was delivered: %v", order.Ref, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Order processing failed. Please try again."})
			return
		}

		order.Status = models.OrderStatusConfirmed
		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusConfirmed).Error; err != nil {
			log.Printf("❌ Order %s: failed to mark confirmed: %v", order.Ref, err)
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"ref":         order.Ref,
			"status":      order.Status,
			"total":       order.TotalAmount,
			"total_label": models.FormatPrice(order.TotalAmount),
			"items":       order.Items,
		})
	}
}

// GET /checkout/orders/:ref
//
// Order confirmation lookup, scoped to the session that placed it.
func GetOrderByRef(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID, _ := sessionIDVal.(string)

		var order models.Order
		if err := db.Preload("Items").
			Where("ref = ? AND session_id = ?", c.Param("ref"), sessionID).
			First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
