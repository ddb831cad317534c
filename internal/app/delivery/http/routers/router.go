package routers

import (
	"fmt"
	"time"

	"fitbook-service/internal/app/config"
	"fitbook-service/internal/app/delivery/http/controllers"
	mw "fitbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *mw.Middlewares,
	bookingController *controllers.BookingController,
	consultantController *controllers.ConsultantController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	// Booking creation gets a stricter limiter that blocks abusive clients
	// for a while instead of letting them retry immediately.
	createLimiter := mw.NewRateLimiter(
		internalConfig.App.MaxRequests,
		time.Second,
		time.Duration(internalConfig.App.RateLimitBlockTimeMinutes)*time.Minute,
	)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, bookingController, createLimiter)
			})

			r.Route("/consultants", func(r chi.Router) {
				attachConsultantRoutes(r, consultantController)
			})
		})
	})
}
