package main

import (
	"context"
	"strings"

	"github.com/moolex/wallhaven-go/api"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pixoo/internal/config"
	"pixoo/pkg/album"
	"pixoo/pkg/device/pixoo"
	"pixoo/pkg/device/virtual"
	"pixoo/pkg/service"
	"pixoo/pkg/source"
)

var cfgFile = flag.String("config", "", "yaml config file")
var addr = flag.String("addr", "", "device ip or url, overrides the config")
var token = flag.String("tg-token", "", "telegram bot token, overrides the config")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			loadConfig,
			newLogger,
			newClient,
			newDownloader,
			newParams,
			func(cfg *config.Config) *album.History {
				return album.NewHistory(cfg.Slideshow.History)
			},
			func(c *pixoo.Client, dl *source.Downloader, p *album.Params, h *album.History, logger *zap.Logger) *album.Drawer {
				return album.NewDrawer(c, dl, p, h, logger)
			},
			func(cfg *config.Config, p *album.Params, d *album.Drawer, logger *zap.Logger) *album.Album {
				return album.New(p, d, logger, album.WithMaxPage(cfg.Wallhaven.MaxPage))
			},
		),
		fx.Invoke(
			run,
		),
	).Run()
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *cfgFile != "" {
		var err error
		if cfg, err = config.LoadFile(afero.NewOsFs(), *cfgFile); err != nil {
			return nil, err
		}
	}

	if *addr != "" {
		cfg.Device.Addr = *addr
	}
	if *token != "" {
		cfg.Telegram.Token = *token
	}
	if *debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newClient(cfg *config.Config, logger *zap.Logger) (*pixoo.Client, error) {
	opts := []pixoo.Option{pixoo.WithLogger(logger), pixoo.WithTimeout(cfg.Device.Timeout)}

	if cfg.Device.Virtual {
		return pixoo.New("virtual", append(opts, pixoo.WithTransport(virtual.New(logger)))...), nil
	}

	target := cfg.Device.Addr
	if target == "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Device.Timeout)
		defer cancel()

		devices, err := service.New(service.WithLogger(logger)).SameLANDevices(ctx)
		if err != nil {
			return nil, err
		}
		if len(devices) == 0 {
			return nil, errors.New("no device found on the LAN, set device.addr")
		}
		target = devices[0].PrivateIP
	}

	return pixoo.New(target, opts...), nil
}

func newDownloader(cfg *config.Config, logger *zap.Logger) (*source.Downloader, error) {
	if cfg.CacheDir == "" {
		return source.NewDownloader(logger), nil
	}

	fs, err := source.NewDirFs(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	return source.NewDownloader(logger, source.WithCache(source.NewCache(fs))), nil
}

func newParams(cfg *config.Config, logger *zap.Logger) *album.Params {
	p := album.NewParams(cfg.Device.Size)
	p.ChangeWait = cfg.Slideshow.Interval
	p.Brightness = cfg.Slideshow.Brightness
	p.Fit = cfg.FitMode()

	wh := api.New(cfg.Wallhaven.Key)
	wh.SetLogger(logger)
	if cfg.Debug {
		wh.SetDebug()
	}
	p.SetAPI(wh)

	w := cfg.Wallhaven
	q := api.NewQuery(w.Query)
	if w.Category != "" {
		q.SetCategory(strings.Split(w.Category, ",")...)
	}
	if w.Purity != "" {
		q.SetPurity(strings.Split(w.Purity, ",")...)
	}
	if w.Ratio != "" {
		q.SetRatio(w.Ratio)
	}
	if w.Random {
		q.Random()
	} else if w.Sorting != "" {
		q.SortBy(w.Sorting)
	} else {
		q.SortBy(api.SortTopList)
		q.TopRange = w.Toplist
	}
	p.SetQuery(q)

	return p
}

func run(
	lifecycle fx.Lifecycle,
	cfg *config.Config,
	client *pixoo.Client,
	params *album.Params,
	a *album.Album,
	dl *source.Downloader,
	d *album.Drawer,
	h *album.History,
	logger *zap.Logger,
) error {
	var bot *album.Bot
	if cfg.Telegram.Token != "" {
		var err error
		if bot, err = album.NewBot(cfg.Telegram.Token, client, params, dl, d, h); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})

	lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := client.SetBrightness(startCtx, cfg.Slideshow.Brightness); err != nil {
				return err
			}

			if err := params.Querying(); err != nil {
				return err
			}

			if bot != nil {
				bot.Start()
			}

			go func() {
				a.Run(ctx)
				close(exited)
			}()

			logger.With(zap.String("device", client.Addr()), zap.Int("size", cfg.Device.Size)).Info("started")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			if bot != nil {
				bot.Stop()
			}

			select {
			case <-exited:
			case <-stopCtx.Done():
			}
			logger.Info("exited")
			return nil
		},
	})

	return nil
}
