package gateway

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// UnauthorizedHandler receives the global logout signal raised by a 401.
type UnauthorizedHandler func(ctx context.Context)

// Download is a binary backend answer streamed back to the browser.
type Download struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
	now            func() time.Time
}

func NewClient(internalConfig *config.InternalConfig, logger *zap.Logger) *Client {
	limit := rate.Inf
	if internalConfig.Backend.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(internalConfig.Backend.MaxRequestsPerSecond)
	}
	burst := internalConfig.Backend.MaxBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		BaseUrl: strings.TrimRight(internalConfig.Backend.BaseUrl, "/") + "/",
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Backend.TimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
		now:     time.Now,
	}
}

func (c *Client) OnUnauthorized(handler UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = handler
}

// Do sends the request and decodes a successful JSON answer into out, which may be nil.
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingEndpointKey, req.resource()),
	)

	body, _, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	err = json.Unmarshal(body, out)
	if err != nil {
		c.Log.Error("gatewayClient.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, req.resource()),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, req.resource())
	}
	return nil
}

// Download returns the raw body of a successful answer together with its content type and file name.
func (c *Client) Download(ctx context.Context, req *Request) (*Download, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.Download called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, req.resource()),
	)

	body, header, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	download := &Download{
		ContentType: header.Get(constvars.HeaderContentType),
		Content:     body,
	}
	if disposition := header.Get(constvars.HeaderContentDisposition); disposition != "" {
		_, params, err := mime.ParseMediaType(disposition)
		if err == nil {
			download.FileName = params["filename"]
		}
	}
	return download, nil
}

func (c *Client) send(ctx context.Context, req *Request) ([]byte, http.Header, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	resource := req.resource()

	err := c.Limiter.Wait(ctx)
	if err != nil {
		return nil, nil, exceptions.ErrBackendThrottled(err)
	}

	payload, contentType, err := req.encodeBody()
	if err != nil {
		return nil, nil, exceptions.ErrBuildMultipartBody(err)
	}

	endpoint := c.BaseUrl + resource
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, payload)
	if err != nil {
		return nil, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if contentType != "" {
		httpReq.Header.Set(constvars.HeaderContentType, contentType)
	}
	if requestID != "" {
		httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	session, hasSession := models.SessionFromContext(ctx)
	if hasSession {
		for _, cookie := range session.Cookies() {
			httpReq.AddCookie(cookie)
		}
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Error("gatewayClient.send error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, resource),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if hasSession {
		session.MergeBackendCookies(resp.Cookies(), c.now())
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		apiErr := parseAPIError(resp.StatusCode, resource, body)
		c.intercept(ctx, requestID, apiErr)
		return nil, nil, exceptions.ErrBackendResponse(apiErr, apiErr.Status, apiErr.Message, resource).
			WithFields(apiErr.Fields)
	}

	c.Log.Info("gatewayClient.send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, resource),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return body, resp.Header, nil
}

// intercept applies the global response rules before the error reaches the caller.
func (c *Client) intercept(ctx context.Context, requestID string, apiErr *APIError) {
	if apiErr.Status == constvars.StatusUnauthorized && !isUnauthorizedExempt(apiErr.Path) {
		c.mu.RLock()
		handler := c.onUnauthorized
		c.mu.RUnlock()
		if handler != nil {
			handler(ctx)
		}
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, apiErr.Path),
		zap.Int(constvars.LoggingStatusCodeKey, apiErr.Status),
		zap.String(constvars.LoggingErrorTypeKey, apiErr.ErrorType),
		zap.String("message", apiErr.Message),
	}

	switch {
	case apiErr.Status == constvars.StatusUnauthorized:
		// handled by the logout signal
	case apiErr.Status == constvars.StatusBadRequest &&
		strings.HasPrefix(apiErr.Path, constvars.BackendAuthPathPrefix) &&
		apiErr.HasDetails():
		// expected auth validation answers are shown to the user, not logged
	case apiErr.Status == constvars.StatusBadRequest && len(apiErr.Fields) > 0:
		// field errors are rendered inline
	case apiErr.Status >= constvars.StatusInternalServerError:
		c.Log.Error("gatewayClient.send backend server error", fields...)
	default:
		c.Log.Warn("gatewayClient.send backend rejected request", fields...)
	}
}

func isUnauthorizedExempt(path string) bool {
	for _, exempt := range constvars.BackendUnauthorizedExemptPaths {
		if path == exempt {
			return true
		}
	}
	return false
}
