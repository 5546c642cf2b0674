package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pixoo/pkg/proto"
)

const DefaultBaseURL = "https://app.divoom-gz.com"

const (
	pathSameLANDevices = "/Device/ReturnSameLANDevice"
	pathClockTypes     = "/Channel/GetDialType"
	pathClockList      = "/Channel/GetDialList"
	pathFontList       = "/Device/GetTimeDialFontList"
)

type Option func(c *Client)

func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.cli.SetBaseURL(url)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// New returns a client for the Divoom cloud service, which knows the devices
// registered from the caller's network and the clock faces on offer.
func New(opts ...Option) *Client {
	c := &Client{
		cli: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Content-Type", "application/json"),
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Client struct {
	cli *resty.Client
	log *zap.Logger
}

type result struct {
	ReturnCode    int    `json:"ReturnCode"`
	ReturnMessage string `json:"ReturnMessage"`
}

func (c *Client) post(ctx context.Context, path string, body interface{}, v interface{}) error {
	req := c.cli.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return errors.Wrapf(err, "post %s", path)
	}

	c.log.With(zap.String("path", path), zap.Int("status", resp.StatusCode())).Debug("service")

	if !resp.IsSuccess() {
		return &proto.StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var r result
	if err := json.Unmarshal(resp.Body(), &r); err != nil {
		return errors.Wrap(err, "decode service response")
	}
	if r.ReturnCode != 0 {
		return &proto.DeviceError{Code: r.ReturnCode, Message: r.ReturnMessage}
	}

	return errors.Wrap(json.Unmarshal(resp.Body(), v), "decode service payload")
}
