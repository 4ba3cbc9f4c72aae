package utils

import (
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if page*pageSize < total {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

type errorResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Errors     map[string]string    `json:"errors,omitempty"`
	RetryAfter int                  `json:"retry_after,omitempty"`
	DevMessage string               `json:"dev_message,omitempty"`
	Location   *exceptions.Location `json:"location,omitempty"`
}

// ResolveError extracts the status and client message a failed operation should surface.
func ResolveError(err error) (int, string) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode, customErr.ClientMessage
	}
	return constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := errorResponse{
		Success: false,
		Message: constvars.ErrClientSomethingWrongWithApplication,
	}
	code := constvars.StatusInternalServerError

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		response.Message = customErr.ClientMessage
		response.Errors = customErr.Fields
		response.RetryAfter = customErr.RetryAfter

		fields := []zap.Field{
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		}
		if code >= constvars.StatusInternalServerError {
			log.Error(customErr.DevMessage, fields...)
		} else {
			log.Warn(customErr.DevMessage, fields...)
		}

		if GetEnvString("APP_ENV", "development") != "production" {
			response.DevMessage = customErr.DevMessage
			response.Location = &customErr.Location
		}
	} else {
		log.Error(err.Error())
	}

	if response.RetryAfter > 0 {
		w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(response.RetryAfter))
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
