package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"pixoo/pkg/animation"
	"pixoo/pkg/device/pixoo"
	"pixoo/pkg/device/virtual"
	"pixoo/pkg/mixer"
	"pixoo/pkg/proto"
	"pixoo/pkg/service"
	"pixoo/pkg/source"
)

var addr = flag.String("addr", "", "device ip or url, discovered when empty")
var size = flag.Int("size", 64, "device canvas size: 16, 32 or 64")
var timeout = flag.Duration("timeout", 10*time.Second, "request timeout")
var debug = flag.Bool("debug", false, "set debug")
var dry = flag.Bool("virtual", false, "send to an in-memory device instead")
var fit = flag.String("fit", "stretch", "fit mode: center, stretch, fitx, fity")
var rotate = flag.Float64("rotate", 0, "rotation in degrees")
var opacity = flag.Float64("opacity", 1, "source opacity 0-1")
var blend = flag.String("blend", "source-over", "blend mode")
var speed = flag.Duration("speed", 0, "frame delay, taken from the gif when zero")
var id = flag.Int("id", animation.IDAuto, "animation id, -1 asks the device")
var stream = flag.Bool("stream", false, "send one request per frame")
var preview = flag.String("preview", "", "also write the rendered animation to this gif file")
var effect = flag.String("effect", "", "reveal a still image with an effect: "+strings.Join(mixer.EffectNames(), ", "))
var steps = flag.Int("steps", 8, "frames used by -effect")

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pixoo [flags] <command> [args]

Commands:
  discover                 list devices on the LAN
  draw <file|url>          draw an image or gif
  brightness <0-100>       set brightness
  channel <name>           select clock, cloud, visualizer or custom
  screen <on|off>          switch the screen
  text <message>           scroll a text, empty clears
  settings                 print device settings
  reset-id                 reset the animation id counter
  raw <json>...            send raw command fragments as one batch

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	newLogger := lo.Ternary(*debug, zap.NewDevelopment, zap.NewProduction)
	logger, err := newLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *zap.Logger, cmd string, args []string) error {
	if cmd == "discover" {
		return discover(ctx, logger)
	}

	client, err := connect(ctx, logger)
	if err != nil {
		return err
	}

	switch cmd {
	case "draw":
		if len(args) != 1 {
			return fmt.Errorf("draw needs one file or url")
		}
		return draw(ctx, logger, client, args[0])
	case "brightness":
		n, err := strconv.Atoi(strings.Join(args, ""))
		if err != nil {
			return err
		}
		return client.SetBrightness(ctx, n)
	case "channel":
		ch, err := proto.ParseChannelType(strings.Join(args, ""))
		if err != nil {
			return err
		}
		return client.SelectChannel(ctx, ch)
	case "screen":
		state, err := proto.ParseSwitch(strings.Join(args, ""))
		if err != nil {
			return err
		}
		return client.SetScreenPower(ctx, state)
	case "text":
		msg := strings.Join(args, " ")
		if msg == "" {
			return client.ClearAllText(ctx)
		}
		text := pixoo.NewTextAnimation(msg)
		text.Width = *size
		return client.SendTextAnimation(ctx, text)
	case "settings":
		s, err := client.GetDeviceSettings(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", *s)
		return nil
	case "reset-id":
		return client.ResetNextAnimationID(ctx)
	case "raw":
		body, err := client.ExecuteRaw(ctx, args...)
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	}

	return fmt.Errorf("unknown command %q", cmd)
}

func discover(ctx context.Context, logger *zap.Logger) error {
	devices, err := service.New(service.WithLogger(logger)).SameLANDevices(ctx)
	if err != nil {
		return err
	}

	for _, d := range devices {
		fmt.Printf("%s\t%d\t%s\n", d.PrivateIP, d.ID, d.Name)
	}
	return nil
}

func connect(ctx context.Context, logger *zap.Logger) (*pixoo.Client, error) {
	opts := []pixoo.Option{pixoo.WithLogger(logger), pixoo.WithTimeout(*timeout)}

	if *dry {
		return pixoo.New("virtual", append(opts, pixoo.WithTransport(virtual.New(logger)))...), nil
	}

	target := *addr
	if target == "" {
		devices, err := service.New(service.WithLogger(logger)).SameLANDevices(ctx)
		if err != nil {
			return nil, fmt.Errorf("discover device failed: %w", err)
		}
		if len(devices) == 0 {
			return nil, fmt.Errorf("no device found on the LAN, use --addr")
		}
		target = devices[0].PrivateIP
		logger.With(zap.String("name", devices[0].Name), zap.String("ip", target)).Info("discovered")
	}

	return pixoo.New(target, opts...), nil
}

func draw(ctx context.Context, logger *zap.Logger, client *pixoo.Client, src string) error {
	fitMode, err := mixer.ParseFitMode(*fit)
	if err != nil {
		return err
	}
	blendMode, err := mixer.ParseBlendMode(*blend)
	if err != nil {
		return err
	}

	var seq *source.Sequence
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		seq, err = source.NewDownloader(logger, source.WithProgress()).Load(ctx, src)
	} else {
		seq, err = source.NewLoader(afero.NewOsFs()).Load(src)
	}
	if err != nil {
		return err
	}

	opts := []mixer.Option{
		mixer.WithRotation(*rotate),
		mixer.WithOpacity(*opacity),
		mixer.WithBlend(blendMode),
	}

	var anim *animation.Animation
	if *effect != "" {
		var eff mixer.Effect
		if eff, err = mixer.ParseEffect(*effect); err != nil {
			return err
		}
		anim, err = source.Reveal(seq, *size, fitMode, *speed, eff, *steps, opts...)
	} else {
		anim, err = source.Render(seq, *size, fitMode, *speed, opts...)
	}
	if err != nil {
		return err
	}

	logger.With(
		zap.Int("frames", anim.FrameCount),
		zap.Int("speed", anim.SpeedMs()),
		zap.String("size", bytesize.New(float64(anim.FrameCount*len(anim.Frames[0]))).String()),
	).Info("rendered")

	if *preview != "" {
		if err := anim.WriteGIF(afero.NewOsFs(), *preview); err != nil {
			return err
		}
	}

	if !*stream {
		return client.SendImageAnimation(ctx, *id, anim)
	}

	bar := progressbar.Default(int64(anim.FrameCount), "Sending frames")
	return client.StreamImageAnimation(ctx, *id, anim, func(sent, total int) {
		_ = bar.Set(sent)
	})
}
