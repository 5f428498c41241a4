package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"courtshare/config"
	"courtshare/services/booking"
	"courtshare/utils"
)

const maxWebhookBodyBytes = 65536

// WebhookHandler receives Stripe events. It is mounted outside the
// auth middleware; the signature check is the authentication.
type WebhookHandler struct {
	BookingService booking.BookingService
}

// StripeWebhookHandler handles POST /api/webhooks/stripe.
func (h *WebhookHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		logger.Warn("rejected webhook with bad signature", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			logger.Error("failed to parse checkout session event", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
			return
		}
		paymentIntentID := ""
		if sess.PaymentIntent != nil {
			paymentIntentID = sess.PaymentIntent.ID
		}
		if err := h.BookingService.HandleCheckoutCompleted(c.Request.Context(), sess.ID, paymentIntentID); err != nil {
			logger.Error("failed to settle checkout session",
				zap.String("sessionID", sess.ID), zap.Error(err))
			// Non-2xx makes Stripe retry the delivery.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
			return
		}

	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			logger.Error("failed to parse checkout session event", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
			return
		}
		if err := h.BookingService.HandleCheckoutExpired(c.Request.Context(), sess.ID); err != nil {
			logger.Error("failed to release hold for expired session",
				zap.String("sessionID", sess.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "release failed"})
			return
		}

	default:
		logger.Debug("ignoring unhandled webhook event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
