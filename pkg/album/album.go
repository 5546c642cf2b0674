package album

import (
	"context"
	"time"

	"github.com/moolex/wallhaven-go/api"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// New returns a slideshow showing wallhaven results on the device.
func New(params *Params, d *Drawer, logger *zap.Logger, opts ...Option) *Album {
	a := &Album{
		params: params,
		d:      d,
		logger: logger,
		// options
		maxPage: -1,
		maxSize: -1,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

type Album struct {
	params *Params
	d      *Drawer
	logger *zap.Logger
	// options
	maxPage int
	maxSize int
}

func (a *Album) pickWallpaper() (*api.Wallpaper, error) {
	r := a.params.GetResult()
	if r == nil {
		return nil, errors.New("no query result")
	}

	wp, err := r.Pick(api.PickLoop)
	if err != nil {
		if errors.Is(err, api.ErrNoMoreItems) {
			a.params.UpdateQuery(func(q *api.QueryCond) { q.Page = 1 })
		}
		return nil, errors.Wrap(err, "get wallpaper failed")
	}

	if a.maxPage > 0 && a.params.GetQuery().Page >= a.maxPage {
		a.params.UpdateQuery(func(q *api.QueryCond) { q.Page = 0 })
	}

	return wp, nil
}

// Drawing shows the next wallpaper.
func (a *Album) Drawing(ctx context.Context) error {
	wp, err := a.pickWallpaper()
	if err != nil {
		return err
	}

	full := a.maxSize > 0 && wp.FileSize <= a.maxSize
	if err := a.d.Show(ctx, wp, full); err != nil {
		return errors.Wrap(err, "show wallpaper failed")
	}

	return nil
}

// Run changes the wallpaper every ChangeWait until ctx is done.
func (a *Album) Run(ctx context.Context) {
	timer := time.NewTimer(time.Nanosecond)
	defer timer.Stop()

	wakeupChan := a.params.WakeupChan()
	resetChan := a.params.ResetChan()

	for {
		select {
		case <-ctx.Done():
			return
		case <-wakeupChan:
			timer.Reset(time.Millisecond)
		case dur := <-resetChan:
			timer.Reset(dur)
		case <-timer.C:
			if a.params.Paused() {
				a.logger.Info("switch paused, skip...")
				continue
			}
			if err := a.Drawing(ctx); err != nil {
				a.logger.With(zap.Error(err)).Info("drawing failed")
				timer.Reset(a.params.ErrorWait)
			} else {
				timer.Reset(a.params.ChangeWait)
			}
		}
	}
}
