package paymentController

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	paymentValidator "academy/validators/payment"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
)

// expectedSignature recomputes the gateway's HMAC-SHA256 over
// orderId|paymentId. This is the sole authenticity check on a payment
// confirmation.
func expectedSignature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(config.AppConfig.RazorpaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func CreateOrder(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateOrder").(*paymentValidator.CreateOrderRequest)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnrollmentID, false).
		Preload("Course").First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
	}

	if enrollment.PaymentStatus == models.PaymentPaid {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Enrollment is already paid")
	}

	// Gateway bills in the minor currency unit. Rounded, not truncated:
	// 499.99 * 100 can land just under 49999 in floating point.
	amountMinor := int64(math.Round(enrollment.Course.Price * 100))

	order, err := utils.Gateway.CreateOrder(amountMinor, config.AppConfig.Currency, utils.OrderReceipt(enrollment.ID))
	if err != nil {
		log.Printf("Error creating gateway order for enrollment %d: %v", enrollment.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Order creation failed")
	}

	// The order is provisional; nothing is persisted until verification
	return c.JSON(fiber.Map{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"key":      config.AppConfig.RazorpayKeyID,
	})
}

func VerifyPayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerifyPayment").(*paymentValidator.VerifyPaymentRequest)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnrollmentID, false).
		Preload("User").Preload("Course").First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
	}

	expected := expectedSignature(reqData.OrderID, reqData.PaymentID)
	if !hmac.Equal([]byte(expected), []byte(reqData.Signature)) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid payment signature")
	}

	// Conditional transition: only the first verification of an UNPAID
	// enrollment wins. A concurrent or repeated verify affects zero rows.
	result := db.Model(&models.Enrollment{}).
		Where("id = ? AND payment_status = ?", enrollment.ID, models.PaymentUnpaid).
		Updates(map[string]interface{}{
			"payment_status": models.PaymentPaid,
			"status":         models.EnrollmentActive,
			"payment_id":     reqData.PaymentID,
		})

	if result.Error != nil {
		log.Printf("Error updating enrollment %d after verification: %v", enrollment.ID, result.Error)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Payment verification failed")
	}

	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Payment already verified")
	}

	utils.SendPaymentSuccessEmail(enrollment.User.Email, enrollment.User.Name, enrollment.Course.Title)

	return c.JSON(fiber.Map{
		"message":      "Payment verified successfully",
		"enrollmentId": enrollment.ID,
	})
}
