package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/you-humble/emergency-supply/internal/model"
	supplyv1 "github.com/you-humble/emergency-supply/pkg/api/supply/v1"
	"github.com/you-humble/emergency-supply/platform/logger"
)

const internalErrorMessage = "internal server error"

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := mapErrorToRes(err)
	if res.Code == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", logger.ErrorF(err))
	}

	writeJSON(ctx, w, res.Code, res)
}

// mapErrorToRes never exposes the text of unexpected errors.
func mapErrorToRes(err error) supplyv1.Error {
	var verr *model.ValidationError

	switch {
	case errors.As(err, &verr):
		return supplyv1.Error{ // 400
			Code:    http.StatusBadRequest,
			Message: verr.Error(),
			Fields:  verr.Fields,
		}
	case errors.Is(err, model.ErrValidation):
		return supplyv1.Error{ // 400
			Code:    http.StatusBadRequest,
			Message: model.ErrValidation.Error(),
		}
	case errors.Is(err, model.ErrSupplyConflict):
		return supplyv1.Error{ // 409
			Code:    http.StatusConflict,
			Message: model.ErrSupplyConflict.Error(),
		}
	case errors.Is(err, model.ErrNoSupplies):
		return supplyv1.Error{ // 404
			Code:    http.StatusNotFound,
			Message: model.ErrNoSupplies.Error(),
		}
	case errors.Is(err, model.ErrSupplyNotFound):
		return supplyv1.Error{ // 404
			Code:    http.StatusNotFound,
			Message: model.ErrSupplyNotFound.Error(),
		}
	default:
		return supplyv1.Error{ // 500
			Code:    http.StatusInternalServerError,
			Message: internalErrorMessage,
		}
	}
}
