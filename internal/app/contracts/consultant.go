package contracts

import (
	"context"

	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/dto/responses"
)

type ConsultantUsecase interface {
	FindConsultantByID(ctx context.Context, consultantID string) (*responses.Consultant, error)
}

type ConsultantRepository interface {
	FindByID(ctx context.Context, consultantID string) (*models.ConsultantRef, error)
}
