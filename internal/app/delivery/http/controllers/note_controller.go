package controllers

import (
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

type NoteController struct {
	Log         *zap.Logger
	NoteUsecase contracts.NoteUsecase
}

func NewNoteController(logger *zap.Logger, noteUsecase contracts.NoteUsecase) *NoteController {
	return &NoteController{
		Log:         logger,
		NoteUsecase: noteUsecase,
	}
}

func (ctrl *NoteController) FindNotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.NoteUsecase.FindNotes(ctx, &requests.FindNotes{
		SessionData: utils.GetSessionData(r.Context()),
		Search:      utils.GetQueryParam(r, constvars.URLQueryParamSearch),
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotesSuccessMessage, response)
}

func (ctrl *NoteController) CreateNote(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateNote)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())

	utils.SanitizeCreateNoteRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.NoteUsecase.CreateNote(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateNoteSuccessMessage, response)
}

func (ctrl *NoteController) UpdateNote(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateNote)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SessionData = utils.GetSessionData(r.Context())
	request.NoteID = chi.URLParam(r, constvars.URLParamNoteID)

	utils.SanitizeUpdateNoteRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.NoteUsecase.UpdateNote(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateNoteSuccessMessage, response)
}

func (ctrl *NoteController) DeleteNote(w http.ResponseWriter, r *http.Request) {
	request := &requests.DeleteNote{
		SessionData: utils.GetSessionData(r.Context()),
		NoteID:      chi.URLParam(r, constvars.URLParamNoteID),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamNoteID))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = ctrl.NoteUsecase.DeleteNote(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNoteSuccessMessage, nil)
}
