package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursefinder/internal/app/models/dto"
	"github.com/yigit/coursefinder/internal/pkg/apperrors"
)

// --- Central Error Handling ---

// HandleAPIError reports a failed request as 500 with an {"error": message} body.
// The error kind only decides how loudly it is logged.
func HandleAPIError(c *gin.Context, err error) {
	lgr := LoggerFrom(c)

	switch {
	case apperrors.Is(err, apperrors.ErrBadTimeFormat, apperrors.ErrBadRequest):
		lgr.Warn().Err(err).Str("errorType", errorType(err)).Msg("Rejected request")
	case errors.Is(err, apperrors.ErrCatalogNotReady):
		lgr.Error().Err(err).Msg("Course data unavailable")
	default:
		lgr.Error().Err(err).Str("errorType", errorType(err)).Msg("Unexpected error while handling request")
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorMessageResponse{Error: err.Error()})
}

func errorType(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Err != nil {
		return custom.Err.Error()
	}
	return "unexpected"
}
