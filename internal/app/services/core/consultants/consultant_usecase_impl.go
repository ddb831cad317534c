package consultants

import (
	"context"
	"sync"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	consultantUsecaseInstance contracts.ConsultantUsecase
	onceConsultantUsecase     sync.Once
)

type consultantUsecase struct {
	consultantRepo contracts.ConsultantRepository
	log            *zap.Logger
}

func NewConsultantUsecase(consultantRepo contracts.ConsultantRepository, logger *zap.Logger) contracts.ConsultantUsecase {
	onceConsultantUsecase.Do(func() {
		consultantUsecaseInstance = &consultantUsecase{
			consultantRepo: consultantRepo,
			log:            logger,
		}
	})
	return consultantUsecaseInstance
}

func (u *consultantUsecase) FindConsultantByID(ctx context.Context, consultantID string) (*responses.Consultant, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.log.Info("consultantUsecase.FindConsultantByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, consultantID),
	)

	consultant, err := u.consultantRepo.FindByID(ctx, consultantID)
	if err != nil {
		return nil, err
	}

	return &responses.Consultant{
		ID:   consultant.ID,
		Name: consultant.Name,
		Mode: string(consultant.Mode),
	}, nil
}
