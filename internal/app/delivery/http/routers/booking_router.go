package routers

import (
	"fitbook-service/internal/app/delivery/http/controllers"
	mw "fitbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(r chi.Router, bookingController *controllers.BookingController, createLimiter *mw.RateLimiter) {
	r.With(createLimiter.Limit).Post("/", bookingController.CreateBooking)
	r.Get("/{bookingID}", bookingController.FindBookingByID)
	r.Patch("/{bookingID}/status", bookingController.UpdateBookingStatus)
}
