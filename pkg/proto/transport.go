package proto

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PostPath is where a Pixoo accepts commands.
const PostPath = "/post"

// Transport posts one finalized body and returns the raw answer.
type Transport interface {
	Post(ctx context.Context, path string, body string) ([]byte, error)
}

type HTTPOption func(t *HTTPTransport)

func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		t.cli.SetTimeout(d)
	}
}

func WithLogger(logger *zap.Logger) HTTPOption {
	return func(t *HTTPTransport) {
		t.log = logger
	}
}

// WithRetry retries requests that failed on the network level. Answers with
// an error status are never retried.
func WithRetry(count int, wait time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		t.cli.SetRetryCount(count).SetRetryWaitTime(wait)
	}
}

// NewHTTP talks to a device at addr, which may be a bare host or a full URL.
func NewHTTP(addr string, opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		cli: resty.New().
			SetBaseURL(BaseURL(addr)).
			SetTimeout(10*time.Second).
			SetHeader("Content-Type", "application/json"),
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

type HTTPTransport struct {
	cli *resty.Client
	log *zap.Logger
}

func (t *HTTPTransport) BaseURL() string {
	return t.cli.BaseURL
}

func (t *HTTPTransport) Post(ctx context.Context, path string, body string) ([]byte, error) {
	start := time.Now()
	resp, err := t.cli.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return nil, errors.Wrapf(err, "post %s", path)
	}

	t.log.With(
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.String("cost", time.Since(start).String()),
	).Debug("transfer")

	if !resp.IsSuccess() {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return resp.Body(), nil
}

// BaseURL turns "192.168.0.2" into "http://192.168.0.2" and leaves full URLs
// alone.
func BaseURL(addr string) string {
	addr = strings.TrimRight(addr, "/")
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	return "http://" + addr
}
