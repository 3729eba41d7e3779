package controllers

import (
	"errors"
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

type VideoRoomController struct {
	Log              *zap.Logger
	VideoRoomUsecase contracts.VideoRoomUsecase
}

func NewVideoRoomController(logger *zap.Logger, videoRoomUsecase contracts.VideoRoomUsecase) *VideoRoomController {
	return &VideoRoomController{
		Log:              logger,
		VideoRoomUsecase: videoRoomUsecase,
	}
}

func (ctrl *VideoRoomController) OpenRoom(w http.ResponseWriter, r *http.Request) {
	request := new(requests.OpenVideoRoom)
	// The body is optional
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.VideoRoomUsecase.OpenRoom(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OpenVideoRoomSuccessMessage, response)
}

func (ctrl *VideoRoomController) JoinRoom(w http.ResponseWriter, r *http.Request) {
	request := &requests.JoinVideoRoom{
		SessionData: utils.GetSessionData(r.Context()),
		RoomName:    chi.URLParam(r, constvars.URLParamRoomName),
		ParentNode:  utils.GetQueryParam(r, constvars.URLQueryParamParent),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRoomName))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.VideoRoomUsecase.JoinRoom(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.JoinVideoRoomSuccessMessage, response)
}

func (ctrl *VideoRoomController) HandleEvent(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VideoRoomEvent)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())
	request.RoomName = chi.URLParam(r, constvars.URLParamRoomName)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.VideoRoomUsecase.HandleEvent(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HandleVideoEventSuccessMessage, response)
}

func (ctrl *VideoRoomController) DisposeRoom(w http.ResponseWriter, r *http.Request) {
	request := &requests.DisposeVideoRoom{
		SessionData: utils.GetSessionData(r.Context()),
		RoomName:    chi.URLParam(r, constvars.URLParamRoomName),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRoomName))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = ctrl.VideoRoomUsecase.DisposeRoom(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DisposeVideoRoomSuccessMessage, nil)
}
