package controllers

import (
	"context"
	"net/http"
	"time"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/exceptions"
	"fitbook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	requestTimeout time.Duration
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, requestTimeoutInSeconds int) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		requestTimeout: time.Duration(requestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.CreateBooking requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := &requests.CreateBookingRequest{}
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking BookingUsecase.CreateBooking error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingSuccessMessage, response)
}

func (ctrl *BookingController) FindBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.FindBookingByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	ctrl.Log.Info("BookingController.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindBookingByID(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.FindBookingByID BookingUsecase.FindBookingByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.FindBookingByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, response)
}

func (ctrl *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.UpdateBookingStatus requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	ctrl.Log.Info("BookingController.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))

	request := &requests.UpdateBookingStatusRequest{}
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.UpdateBookingStatus(ctx, bookingID, request)
	if err != nil {
		ctrl.Log.Error("BookingController.UpdateBookingStatus BookingUsecase.UpdateBookingStatus error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.UpdateBookingStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingStatusSuccessMessage, response)
}
