package gateway

import (
	"anubha-web/internal/pkg/backend_dto"
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// Request describes one call to the clinic backend. Body and Multipart are mutually exclusive.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      interface{}
	Multipart *Multipart
}

type Multipart struct {
	Fields []Field
	Files  []backend_dto.FilePart
}

type Field struct {
	Name  string
	Value string
}

func (r *Request) resource() string {
	return strings.TrimPrefix(r.Path, "/")
}

func (r *Request) encodeBody() (io.Reader, string, error) {
	switch {
	case r.Multipart != nil:
		return r.Multipart.encode()
	case r.Body != nil:
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(payload), "application/json", nil
	default:
		return nil, "", nil
	}
}

func (m *Multipart) encode() (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range m.Fields {
		err := writer.WriteField(field.Name, field.Value)
		if err != nil {
			return nil, "", err
		}
	}

	for _, file := range m.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", multipartDisposition(file.FieldName, file.FileName))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		_, err = part.Write(file.Content)
		if err != nil {
			return nil, "", err
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func multipartDisposition(fieldName, fileName string) string {
	return `form-data; name="` + quoteEscaper.Replace(fieldName) + `"; filename="` + quoteEscaper.Replace(fileName) + `"`
}
