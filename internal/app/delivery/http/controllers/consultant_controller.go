package controllers

import (
	"context"
	"net/http"
	"time"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/exceptions"
	"fitbook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConsultantController struct {
	Log               *zap.Logger
	ConsultantUsecase contracts.ConsultantUsecase
	requestTimeout    time.Duration
}

func NewConsultantController(logger *zap.Logger, consultantUsecase contracts.ConsultantUsecase, requestTimeoutInSeconds int) *ConsultantController {
	return &ConsultantController{
		Log:               logger,
		ConsultantUsecase: consultantUsecase,
		requestTimeout:    time.Duration(requestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *ConsultantController) FindConsultantByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ConsultantController.FindConsultantByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	consultantID := chi.URLParam(r, "consultantID")
	ctrl.Log.Info("ConsultantController.FindConsultantByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, consultantID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	response, err := ctrl.ConsultantUsecase.FindConsultantByID(ctx, consultantID)
	if err != nil {
		ctrl.Log.Error("ConsultantController.FindConsultantByID ConsultantUsecase.FindConsultantByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConsultantController.FindConsultantByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, consultantID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConsultantSuccessMessage, response)
}
