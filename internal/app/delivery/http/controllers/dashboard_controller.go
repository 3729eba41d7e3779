package controllers

import (
	"net/http"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetAdminDashboard(ctx, &requests.FindDashboard{
		SessionData: utils.GetSessionData(r.Context()),
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdminDashboardSuccessMessage, response)
}

func (ctrl *DashboardController) GetFriendDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetFriendDashboard(ctx, &requests.FindDashboard{
		SessionData: utils.GetSessionData(r.Context()),
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFriendDashboardSuccessMessage, response)
}
