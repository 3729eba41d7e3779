package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// requestContext keeps the request id and session of r while bounding the
// usecase call.
func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
