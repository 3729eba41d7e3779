package controllers

import (
	"io"
	"net/http"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// multipartMemoryLimit is kept above the avatar limit so the file never
// spills to disk.
const multipartMemoryLimit = 8 << 20

type TherapistController struct {
	Log              *zap.Logger
	TherapistUsecase contracts.TherapistUsecase
}

func NewTherapistController(logger *zap.Logger, therapistUsecase contracts.TherapistUsecase) *TherapistController {
	return &TherapistController{
		Log:              logger,
		TherapistUsecase: therapistUsecase,
	}
}

func (ctrl *TherapistController) FindBookingView(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := &requests.FindTherapistBookingView{
		TherapistID: chi.URLParam(r, constvars.URLParamTherapistID),
		Date:        utils.GetQueryParam(r, constvars.URLQueryParamDate),
	}
	ctrl.Log.Info("TherapistController.FindBookingView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTherapistID))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.TherapistUsecase.FindBookingView(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistBookingViewSuccessMessage, response)
}

func (ctrl *TherapistController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateAvailability)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.TherapistUsecase.UpdateAvailability(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, response)
}

func (ctrl *TherapistController) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	err := r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		ctrl.Log.Error("TherapistController.UploadProfileImage error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFieldAvatar)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadProfileImage{
		SessionData: utils.GetSessionData(r.Context()),
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Size:        header.Size,
		Content:     content,
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.TherapistUsecase.UploadProfileImage(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadProfileImageSuccessMessage, response)
}

func (ctrl *TherapistController) FindTherapists(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindTherapists{
		SessionData: utils.GetSessionData(r.Context()),
		Search:      utils.GetQueryParam(r, constvars.URLQueryParamSearch),
		Status:      utils.GetQueryParam(r, constvars.URLQueryParamStatus),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.TherapistUsecase.FindTherapists(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TherapistController.FindTherapists succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistsSuccessMessage, response)
}

func (ctrl *TherapistController) UpdateVerification(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateTherapistVerification)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())
	request.TherapistID = chi.URLParam(r, constvars.URLParamTherapistID)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.TherapistUsecase.UpdateVerification(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateVerificationSuccessMessage, response)
}
