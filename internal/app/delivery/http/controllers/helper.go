package controllers

import (
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const multipartMemory = 32 << 20

func decodeJSON(r *http.Request, dest interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dest)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// decodeOptionalJSON accepts an empty body.
func decodeOptionalJSON(r *http.Request, dest interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dest)
	if err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func buildError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func parseMultipart(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		return exceptions.ErrCannotParseMultipartForm(err)
	}
	return nil
}

// readFiles loads every file sent under field. The form must already be parsed.
func readFiles(r *http.Request, field string) ([]backend_dto.FilePart, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]backend_dto.FilePart, 0, len(headers))
	for _, header := range headers {
		file, err := readFileHeader(field, header)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, nil
}

// readFile returns nil when field carries no file.
func readFile(r *http.Request, field string) (*backend_dto.FilePart, error) {
	files, err := readFiles(r, field)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return &files[0], nil
}

func readFileHeader(field string, header *multipart.FileHeader) (*backend_dto.FilePart, error) {
	file, err := header.Open()
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" || contentType == constvars.MIMEOctetStream {
		contentType = http.DetectContentType(content)
	}
	return &backend_dto.FilePart{
		FieldName:   field,
		FileName:    header.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// queryInt falls back to 0 for missing or malformed values; validation happens in the usecase.
func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

// formBool reads checkbox style values; nil means the field was not sent.
func formBool(r *http.Request, key string) *bool {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	parsed, err := strconv.ParseBool(values[0])
	if err != nil {
		parsed = values[0] == "on"
	}
	return &parsed
}
