package server

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"pxsteg/api"
	"pxsteg/internal/logging"
	"pxsteg/pkg/model"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errRequestTooLarge   = api.Error{Code: "request_too_large", Error: "Request body exceeds the maximum allowed size"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errImageTooLarge     = api.Error{Code: "image_too_large", Error: "Supplied image has more pixels than allowed"}
	errInternal          = api.Error{Code: "internal_error", Error: "An unexpected error occurred"}
)

// codecErrors maps every codec error to the status and code it is reported with, the message is the error itself
var codecErrors = []struct {
	err    error
	status int
	code   string
}{
	{model.ErrInvalidParameter, http.StatusBadRequest, "invalid_parameter"},
	{model.ErrCapacityExceeded, http.StatusBadRequest, "capacity_exceeded"},
	{model.ErrNoHiddenData, http.StatusNotFound, "no_hidden_data"},
	{model.ErrDecryption, http.StatusUnauthorized, "decryption_failed"},
	{model.ErrCorruptPayload, http.StatusUnprocessableEntity, "corrupt_payload"},
	{model.ErrUnsupportedCombination, http.StatusUnprocessableEntity, "unsupported_payload"},
}

func toAPIError(err error) (int, api.Error) {
	for _, ce := range codecErrors {
		if errors.Is(err, ce.err) {
			return ce.status, api.Error{Code: ce.code, Error: err.Error()}
		}
	}
	return http.StatusInternalServerError, errInternal
}

func handleCodecError(ctx *gin.Context, logger *logging.Logger, msg string, err error) {
	status, apiErr := toAPIError(err)
	if status == http.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Info(msg, "status", status)
	}
	ctx.AbortWithStatusJSON(status, apiErr)
}

func handleBindError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Info("Error decoding request body")
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errRequestTooLarge)
		return
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
}
