package controllers

import (
	"net/http"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingRequestController struct {
	Log                   *zap.Logger
	BookingRequestUsecase contracts.BookingRequestUsecase
}

func NewBookingRequestController(logger *zap.Logger, bookingRequestUsecase contracts.BookingRequestUsecase) *BookingRequestController {
	return &BookingRequestController{
		Log:                   logger,
		BookingRequestUsecase: bookingRequestUsecase,
	}
}

func (ctrl *BookingRequestController) CreateBookingRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBookingRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())

	utils.SanitizeCreateBookingRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.BookingRequestUsecase.CreateBookingRequest(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingRequestSuccessMessage, response)
}

func (ctrl *BookingRequestController) FindFriendBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.BookingRequestUsecase.FindFriendBookings(ctx, &requests.FindFriendBookings{
		SessionData: utils.GetSessionData(r.Context()),
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingRequestController.FindFriendBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingRequestsSuccessMessage, response)
}

func (ctrl *BookingRequestController) FindFriendClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.BookingRequestUsecase.FindFriendClients(ctx, &requests.FindFriendBookings{
		SessionData: utils.GetSessionData(r.Context()),
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClientsSuccessMessage, response)
}
