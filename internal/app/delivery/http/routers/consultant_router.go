package routers

import (
	"fitbook-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachConsultantRoutes(r chi.Router, consultantController *controllers.ConsultantController) {
	r.Get("/{consultantID}", consultantController.FindConsultantByID)
}
