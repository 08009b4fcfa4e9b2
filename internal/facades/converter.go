package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/arfoundry/model-gateway/internal/logger"
)

// ErrConversionUpstream is returned for transport failures and non-2xx
// replies from the conversion service.
var ErrConversionUpstream = errors.New("conversion upstream error")

// ConversionError carries the upstream HTTP status alongside the cause.
type ConversionError struct {
	Status int
	Cause  error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion upstream error: %v", e.Cause)
	}
	return fmt.Sprintf("conversion upstream error: status %d", e.Status)
}

func (e *ConversionError) Unwrap() error { return ErrConversionUpstream }

// ConverterFacade calls the external GLB to USDZ conversion service.
type ConverterFacade struct {
	client   *http.Client
	endpoint string
	token    string
}

// Opt configures a ConverterFacade.
type Opt func(*ConverterFacade)

// WithTimeout overrides the default 60s request deadline.
func WithTimeout(d time.Duration) Opt {
	return func(f *ConverterFacade) { f.client.Timeout = d }
}

// NewConverterFacade creates a facade for the given endpoint and API token.
func NewConverterFacade(endpoint, token string, opts ...Opt) *ConverterFacade {
	f := &ConverterFacade{
		client:   &http.Client{Timeout: 60 * time.Second},
		endpoint: endpoint,
		token:    token,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Convert posts the GLB stream as multipart form data and returns the USDZ
// reply as a stream for the caller to consume and close. The request body is
// piped, so neither payload is buffered in memory.
func (f *ConverterFacade) Convert(ctx context.Context, glb io.Reader) (io.ReadCloser, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", "model.glb")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, glb); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := mw.WriteField("from_format", "glb"); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := mw.WriteField("to_format", "usdz"); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, pr)
	if err != nil {
		return nil, &ConversionError{Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Token "+f.token)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("conversion request failed", "endpoint", f.endpoint, "error", err)
		return nil, &ConversionError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		logger.Log.Errorw("conversion rejected upstream", "status", resp.StatusCode)
		return nil, &ConversionError{Status: resp.StatusCode}
	}

	return resp.Body, nil
}
