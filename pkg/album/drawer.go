package album

import (
	"context"
	"sync"

	"github.com/moolex/wallhaven-go/api"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"pixoo/pkg/animation"
	"pixoo/pkg/source"
)

// Screen is the part of a device the slideshow draws on.
type Screen interface {
	SendImageAnimation(ctx context.Context, id int, anim *animation.Animation) error
}

func NewDrawer(screen Screen, dl *source.Downloader, params *Params, history *History, logger *zap.Logger) *Drawer {
	return &Drawer{
		screen:  screen,
		dl:      dl,
		params:  params,
		history: history,
		logger:  logger,
	}
}

type Drawer struct {
	sync.Mutex
	screen  Screen
	dl      *source.Downloader
	params  *Params
	history *History
	logger  *zap.Logger
}

// Render downloads wp, the thumbnail unless full is set, and fits it onto the
// device canvas.
func (d *Drawer) Render(ctx context.Context, wp *api.Wallpaper, full bool) (*animation.Animation, error) {
	url := lo.Ternary(full, wp.Path, wp.Thumbs.Original)

	seq, err := d.dl.Load(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "download image failed")
	}

	anim, err := source.Render(seq, d.params.Size(), d.params.Fit, 0)
	if err != nil {
		return nil, errors.Wrap(err, "render image failed")
	}

	d.logger.With(
		zap.String("id", wp.Id),
		zap.Bool("full", full),
		zap.Int("frames", anim.FrameCount),
	).Debug("rendered")

	return anim, nil
}

// Show renders wp and sends it to the screen.
func (d *Drawer) Show(ctx context.Context, wp *api.Wallpaper, full bool) error {
	d.Lock()
	defer d.Unlock()

	anim, err := d.Render(ctx, wp, full)
	if err != nil {
		return err
	}

	if err := d.Canvas(ctx, anim); err != nil {
		return err
	}

	d.history.Add(wp, anim, !full)
	return nil
}

func (d *Drawer) Canvas(ctx context.Context, anim *animation.Animation) error {
	if err := d.screen.SendImageAnimation(ctx, animation.IDAuto, anim); err != nil {
		return errors.Wrap(err, "send animation failed")
	}
	return nil
}
