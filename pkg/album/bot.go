package album

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/moolex/wallhaven-go/api"
	"github.com/samber/lo"
	tele "gopkg.in/telebot.v3"

	"pixoo/pkg/device/pixoo"
	"pixoo/pkg/mixer"
	"pixoo/pkg/proto"
	"pixoo/pkg/source"
)

// Device is what the bot controls besides the slideshow.
type Device interface {
	Screen
	SetScreenPower(ctx context.Context, state proto.Switch) error
	SetBrightness(ctx context.Context, brightness int) error
	SelectChannel(ctx context.Context, ch proto.ChannelType) error
	SendTextAnimation(ctx context.Context, text *pixoo.TextAnimation) error
	ClearAllText(ctx context.Context) error
}

func NewBot(token string, dev Device, params *Params, dl *source.Downloader, d *Drawer, h *History) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:       b,
		dev:     dev,
		params:  params,
		dl:      dl,
		d:       d,
		h:       h,
		timeout: 30 * time.Second,
	}, nil
}

type Bot struct {
	b       *tele.Bot
	dev     Device
	params  *Params
	dl      *source.Downloader
	d       *Drawer
	h       *History
	timeout time.Duration
}

// call runs fn against the device with a bounded context and answers the
// chat with the outcome.
func (b *Bot) call(c tele.Context, action string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		return c.Reply(fmt.Sprintf("%s failed: %s", action, err))
	}
	return c.Reply("OK")
}

func (b *Bot) handleScreen() {
	b.b.Handle("/open", func(c tele.Context) error {
		return b.call(c, "screen on", func(ctx context.Context) error {
			if err := b.dev.SetScreenPower(ctx, proto.On); err != nil {
				return err
			}
			b.params.Wakeup()
			return nil
		})
	})

	b.b.Handle("/close", func(c tele.Context) error {
		return b.call(c, "screen off", func(ctx context.Context) error {
			b.params.Pause()
			return b.dev.SetScreenPower(ctx, proto.Off)
		})
	})

	b.b.Handle("/pause", func(c tele.Context) error {
		b.params.Pause()
		return c.Reply("Slideshow paused")
	})

	b.b.Handle("/resume", func(c tele.Context) error {
		b.params.Wakeup()
		return c.Reply("Slideshow resumed")
	})

	b.b.Handle("/light", func(c tele.Context) error {
		arg := c.Message().Payload
		if arg == "" {
			return c.Reply(fmt.Sprintf("brightness %d", b.params.Brightness))
		}

		level, err := strconv.Atoi(arg)
		if err != nil || level < 0 || level > 100 {
			return c.Reply("brightness must be 0-100")
		}

		return b.call(c, "brightness", func(ctx context.Context) error {
			if err := b.dev.SetBrightness(ctx, level); err != nil {
				return err
			}
			b.params.Brightness = level
			return nil
		})
	})

	b.b.Handle("/channel", func(c tele.Context) error {
		ch, err := proto.ParseChannelType(c.Message().Payload)
		if err != nil {
			return c.Reply(err.Error())
		}

		return b.call(c, "channel", func(ctx context.Context) error {
			b.params.Pause()
			return b.dev.SelectChannel(ctx, ch)
		})
	})

	b.b.Handle("/text", func(c tele.Context) error {
		msg := c.Message().Payload
		if msg == "" {
			return b.call(c, "clear text", b.dev.ClearAllText)
		}

		text := pixoo.NewTextAnimation(msg)
		text.Width = b.params.Size()
		return b.call(c, "text", func(ctx context.Context) error {
			return b.dev.SendTextAnimation(ctx, text)
		})
	})
}

func (b *Bot) handleSlideshow() {
	b.b.Handle("/interval", func(c tele.Context) error {
		arg := c.Message().Payload
		if arg == "" {
			return c.Reply(fmt.Sprintf("interval %s", b.params.ChangeWait))
		}

		wait, err := time.ParseDuration(arg)
		if err != nil || wait <= 0 {
			return c.Reply(fmt.Sprintf("bad interval %q", arg))
		}

		b.params.ChangeWait = wait
		b.params.Reset(wait)
		return c.Reply("OK")
	})

	b.b.Handle("/fit", func(c tele.Context) error {
		arg := c.Message().Payload
		if arg == "" {
			return c.Reply(fmt.Sprintf("fit %s", b.params.Fit))
		}

		fit, err := mixer.ParseFitMode(arg)
		if err != nil {
			return c.Reply(err.Error())
		}

		b.params.Fit = fit
		return c.Reply("OK")
	})

	b.b.Handle("/prev", func(c tele.Context) error {
		last := b.h.Prev()
		if last == nil {
			return c.Reply("nothing to go back to")
		}

		return b.call(c, "previous", func(ctx context.Context) error {
			if err := b.d.Canvas(ctx, last.Animation); err != nil {
				return err
			}
			b.h.Push(last)
			b.params.Reset(b.params.ChangeWait)
			return nil
		})
	})

	b.b.Handle("/full", func(c tele.Context) error {
		curr := b.h.Curr()
		if curr == nil || !curr.Thumb {
			return c.Reply("no thumbnail on screen")
		}

		return b.call(c, "full size", func(ctx context.Context) error {
			if err := b.d.Show(ctx, curr.Wallpaper, true); err != nil {
				return err
			}
			b.params.Reset(b.params.ChangeWait)
			return nil
		})
	})

	b.b.Handle("/draw", func(c tele.Context) error {
		link := c.Message().Payload
		if link == "" {
			return c.Reply("usage: /draw <image url>")
		}

		return b.call(c, "draw", func(ctx context.Context) error {
			seq, err := b.dl.Load(ctx, link)
			if err != nil {
				return err
			}

			anim, err := source.Render(seq, b.params.Size(), b.params.Fit, 0)
			if err != nil {
				return err
			}

			b.params.Pause()
			return b.d.Canvas(ctx, anim)
		})
	})

	b.b.Handle("/info", func(c tele.Context) error {
		curr := b.h.Curr()
		if curr == nil {
			return c.Reply("nothing on screen")
		}

		wp := curr.Wallpaper
		return c.Reply(strings.Join([]string{
			wp.Url,
			fmt.Sprintf("%s / %s, %s, %s", wp.Category, wp.Purity, wp.Resolution, bytesize.New(float64(wp.FileSize))),
			fmt.Sprintf("%d views, %d favorites", wp.Views, wp.Favorites),
			fmt.Sprintf("%d frames at %dms", curr.Animation.FrameCount, curr.Animation.SpeedMs()),
		}, "\n"))
	})

	b.b.Handle("/logs", func(c tele.Context) error {
		urls := lo.Map(b.h.Logs(), func(l *HistoryLog, _ int) string {
			return l.Wallpaper.Url
		})
		if len(urls) == 0 {
			return c.Reply("history is empty")
		}
		return c.Reply(strings.Join(urls, "\n"))
	})
}

func (b *Bot) handleSearch() {
	pages := func() string {
		m := b.params.GetResult().Meta
		return fmt.Sprintf("%d wallpapers, page %d of %d", m.Total, m.CurrentPage, m.LastPage)
	}

	search := func(c tele.Context, change func(q *api.QueryCond, arg string)) error {
		arg := c.Message().Payload
		b.params.UpdateQuery(func(q *api.QueryCond) {
			q.Page = 1
			change(q, arg)
		})

		if err := b.params.Querying(); err != nil {
			return c.Reply(fmt.Sprintf("search failed: %s", err))
		}
		return c.Reply(pages())
	}

	b.b.Handle("/query", func(c tele.Context) error {
		return search(c, func(q *api.QueryCond, arg string) {
			q.Query = arg
			q.SortBy(api.SortViews)
		})
	})

	b.b.Handle("/toplist", func(c tele.Context) error {
		return search(c, func(q *api.QueryCond, arg string) {
			q.SortBy(api.SortTopList)
			q.TopRange = arg
		})
	})

	b.b.Handle("/sorting", func(c tele.Context) error {
		return search(c, func(q *api.QueryCond, arg string) {
			q.SortBy(arg)
		})
	})

	b.b.Handle("/category", func(c tele.Context) error {
		return search(c, func(q *api.QueryCond, arg string) {
			q.SetCategory(strings.Split(arg, ",")...)
		})
	})

	b.b.Handle("/purity", func(c tele.Context) error {
		return search(c, func(q *api.QueryCond, arg string) {
			q.SetPurity(strings.Split(arg, ",")...)
		})
	})

	b.b.Handle("/page", func(c tele.Context) error {
		if c.Message().Payload == "" {
			return c.Reply(pages())
		}
		return search(c, func(q *api.QueryCond, arg string) {
			n, err := strconv.Atoi(arg)
			q.Page = lo.Ternary(err == nil && n > 0, n, 1)
		})
	})

	b.b.Handle("/preview", func(c tele.Context) error {
		cond, err := b.params.GetQuery().ToMap()
		if err != nil {
			return c.Reply(fmt.Sprintf("preview failed: %s", err))
		}

		values := url.Values{}
		for _, k := range lo.Keys(cond) {
			values.Set(k, cond[k])
		}
		return c.Send("https://wallhaven.cc/search?" + values.Encode())
	})
}

func (b *Bot) Start() {
	b.handleScreen()
	b.handleSlideshow()
	b.handleSearch()
	go b.b.Start()
}

func (b *Bot) Stop() {
	// TODO telebot stop will freezes for next response
	go b.b.Stop()
}
