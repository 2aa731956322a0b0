package aifiles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// Client talks to the third-party AI file API used for question generation.
// Implements ports.AIFileClient.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

type fileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	Status    string `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// NewClient creates a client for the API at baseURL, authenticating with the
// given bearer key.
func NewClient(baseURL, apiKey string, logger *zap.Logger) ports.AIFileClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(60 * time.Second)

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Upload streams a file to the API as multipart form data.
func (c *Client) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*ports.AIFile, error) {
	var out fileResponse
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, body).
		SetFormData(map[string]string{"contentType": contentType}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1/files")
	if err != nil {
		return nil, apperrors.NewExternalError("ai-files", err)
	}
	if resp.IsError() {
		return nil, c.mapError(resp, apiErr)
	}

	c.logger.Info("Uploaded file to AI file API",
		zap.String("fileId", out.ID),
		zap.String("name", filename),
	)

	return &ports.AIFile{
		ID:        out.ID,
		Name:      out.Name,
		SizeBytes: out.SizeBytes,
		Status:    out.Status,
	}, nil
}

// Get fetches the remote file record.
func (c *Client) Get(ctx context.Context, fileID string) (*ports.AIFile, error) {
	var out fileResponse
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get(fmt.Sprintf("/v1/files/%s", fileID))
	if err != nil {
		return nil, apperrors.NewExternalError("ai-files", err)
	}
	if resp.IsError() {
		return nil, c.mapError(resp, apiErr)
	}

	return &ports.AIFile{
		ID:        out.ID,
		Name:      out.Name,
		SizeBytes: out.SizeBytes,
		Status:    out.Status,
	}, nil
}

// Delete removes the remote file.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete(fmt.Sprintf("/v1/files/%s", fileID))
	if err != nil {
		return apperrors.NewExternalError("ai-files", err)
	}
	if resp.IsError() {
		return c.mapError(resp, apiErr)
	}
	return nil
}

func (c *Client) mapError(resp *resty.Response, apiErr errorResponse) error {
	message := apiErr.Message
	if message == "" {
		message = resp.Status()
	}

	c.logger.Warn("AI file API error",
		zap.Int("status", resp.StatusCode()),
		zap.String("message", message),
	)

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError("file")
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.NewUnauthorizedError("ai file api rejected credentials")
	case http.StatusTooManyRequests:
		return apperrors.NewRateLimitError(message)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return apperrors.NewValidationError(message)
	}
	return apperrors.NewExternalError("ai-files", fmt.Errorf("%s", message))
}
