package paymentRoutes

import (
	paymentControllers "academy/controllers/payment"
	"academy/middleware"
	paymentValidators "academy/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/create-order", middleware.JWTMiddleware, paymentValidators.CreateOrder(), paymentControllers.CreateOrder)
	paymentGroup.Post("/verify", middleware.JWTMiddleware, paymentValidators.VerifyPayment(), paymentControllers.VerifyPayment)
}
