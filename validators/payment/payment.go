package paymentValidator

import (
	"academy/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	EnrollmentID uint `json:"enrollmentId"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.EnrollmentID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Enrollment ID is required")
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

type VerifyPaymentRequest struct {
	OrderID      string `json:"orderId"`
	PaymentID    string `json:"paymentId"`
	Signature    string `json:"signature"`
	EnrollmentID uint   `json:"enrollmentId"`
}

func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.OrderID) == "" {
			errors["orderId"] = "Order ID is required!"
		}
		if strings.TrimSpace(reqData.PaymentID) == "" {
			errors["paymentId"] = "Payment ID is required!"
		}
		if strings.TrimSpace(reqData.Signature) == "" {
			errors["signature"] = "Signature is required!"
		}
		if reqData.EnrollmentID == 0 {
			errors["enrollmentId"] = "Enrollment ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}
