// Command checkout-probe drives one complete checkout against a running
// storefront and reports the order it placed.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/ashendes/storefront-demo/internal/client"
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/patterns"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	baseURL := flag.String("url", getEnv("STOREFRONT_URL", "http://localhost:8080"), "storefront base URL including any base path")
	productID := flag.String("product", "2", "product to buy")
	quantity := flag.Int("quantity", 1, "quantity to buy")
	size := flag.String("size", "", "size for products that require one")
	promo := flag.String("promo", "", "promo code to apply")
	delivery := flag.String("delivery", "standard", "delivery option")
	flag.Parse()

	c := client.New(client.Options{BaseURL: *baseURL})

	ctx, cancel := patterns.WithTimeout(context.Background(), 4*patterns.SubmitTimeout)
	defer cancel()

	sessionID, err := c.CreateSession(ctx)
	if err != nil {
		log.Fatal("Failed to create session: ", err)
	}
	logger := log.WithField("session_id", sessionID)
	defer func() {
		if err := c.EndSession(context.Background(), sessionID); err != nil {
			logger.WithError(err).Warn("Failed to end session")
		}
	}()

	item, err := c.AddItem(ctx, sessionID, models.AddItemRequest{
		ProductID: *productID,
		Quantity:  *quantity,
		Size:      *size,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to add item")
		return
	}
	logger.WithFields(log.Fields{"item_id": item.ID, "quantity": item.Quantity}).Info("Item added")

	if *promo != "" {
		cart, err := c.ApplyPromo(ctx, sessionID, *promo)
		if err != nil {
			logger.WithError(err).Error("Promo rejected")
			return
		}
		logger.WithField("discount", cart.Pricing.Discount.String()).Info("Promo applied")
	}

	shipping := models.NewShippingDetails()
	shipping.FirstName = "Probe"
	shipping.LastName = "Customer"
	shipping.Email = "probe@example.com"
	shipping.Phone = "555-010-0199"
	shipping.Address = "100 Main Street"
	shipping.City = "Springfield"
	shipping.State = "IL"
	shipping.ZipCode = "62701"
	shipping.DeliveryOption = *delivery

	if _, err := c.SubmitShipping(ctx, sessionID, shipping); err != nil {
		logger.WithError(err).Error("Shipping rejected")
		return
	}

	payment := models.NewPaymentDetails()
	payment.CardNumber = "4111 1111 1111 1111"
	payment.CardName = "Probe Customer"
	payment.ExpiryDate = "12/30"
	payment.CVV = "123"

	summary, err := c.SubmitPayment(ctx, sessionID, payment)
	if err != nil {
		logger.WithError(err).Error("Payment failed")
		return
	}

	order := summary.Order
	logger.WithFields(log.Fields{
		"order_id":           order.ID,
		"items":              len(order.Items),
		"subtotal":           order.Pricing.Subtotal.String(),
		"shipping":           order.Pricing.Shipping.String(),
		"tax":                order.Pricing.Tax.String(),
		"discount":           order.Pricing.Discount.String(),
		"total":              order.Pricing.Total.String(),
		"estimated_delivery": order.EstimatedDelivery,
		"circuit":            c.CircuitState(),
	}).Info("Order placed")
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
