package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

type DownloaderOption func(d *Downloader)

// WithProgress prints a progress bar on stderr while downloading.
func WithProgress() DownloaderOption {
	return func(d *Downloader) {
		d.progress = true
	}
}

func WithCache(c *Cache) DownloaderOption {
	return func(d *Downloader) {
		d.cache = c
	}
}

func NewDownloader(logger *zap.Logger, opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		cli: resty.New().SetDoNotParseResponse(true).SetTimeout(time.Minute),
		log: logger,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Downloader struct {
	cli *resty.Client
	log *zap.Logger
	// options
	progress bool
	cache    *Cache
}

func (d *Downloader) Get(ctx context.Context, url string) ([]byte, error) {
	if bs, ok, err := d.cache.Load(url); err != nil {
		return nil, err
	} else if ok {
		d.log.With(zap.String("url", url)).Debug("cache hit")
		return bs, nil
	}

	resp, err := d.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "download %s", url)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if !resp.IsSuccess() {
		return nil, errors.Errorf("download %s: status %d", url, resp.StatusCode())
	}

	var dst io.Writer = io.Discard
	if d.progress {
		dst = progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, dst), resp.RawBody()); err != nil {
		return nil, errors.Wrapf(err, "download %s", url)
	}

	if err := d.cache.Save(url, buf.Bytes()); err != nil {
		d.log.With(zap.Error(err)).Info("cache save failed")
	}

	return buf.Bytes(), nil
}

// Load downloads url and decodes it.
func (d *Downloader) Load(ctx context.Context, url string) (*Sequence, error) {
	bs, err := d.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return Decode(bs)
}
