package pixoo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pixoo/pkg/animation"
	"pixoo/pkg/proto"
)

// New creates a client for the device at addr.
func New(addr string, opts ...Option) *Client {
	c := &Client{
		addr:    addr,
		log:     zap.NewNop(),
		timeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tr == nil {
		c.tr = proto.NewHTTP(addr, proto.WithTimeout(c.timeout), proto.WithLogger(c.log))
	}

	return c
}

type Client struct {
	addr    string
	tr      proto.Transport
	log     *zap.Logger
	timeout time.Duration
}

func (c *Client) Addr() string {
	return c.addr
}

// Command starts a builder that sends only its last command.
func (c *Client) Command() *CommandBuilder {
	return newCommandBuilder(c.tr, proto.Single, c.log.With(zap.String("device", c.addr)))
}

// Batch starts a builder that sends all commands in one request.
func (c *Client) Batch() *CommandBuilder {
	return newCommandBuilder(c.tr, proto.Batched, c.log.With(zap.String("device", c.addr)))
}

func (c *Client) run(ctx context.Context, b *CommandBuilder, v interface{}) error {
	body, err := b.Execute(ctx)
	if err != nil || v == nil {
		return err
	}
	return proto.Decode(body, v)
}

func (c *Client) SelectChannel(ctx context.Context, ch proto.ChannelType) error {
	return c.run(ctx, c.Command().SelectChannel(ch), nil)
}

func (c *Client) GetCurrentChannel(ctx context.Context) (proto.ChannelType, error) {
	var resp proto.CurrentChannelResponse
	if err := c.run(ctx, c.Command().GetCurrentChannel(), &resp); err != nil {
		return 0, err
	}
	return proto.ChannelType(resp.SelectIndex), nil
}

func (c *Client) SelectClock(ctx context.Context, id int) error {
	return c.run(ctx, c.Command().SelectClock(id), nil)
}

func (c *Client) GetSelectedClockInfo(ctx context.Context) (*proto.ClockInfoResponse, error) {
	var resp proto.ClockInfoResponse
	if err := c.run(ctx, c.Command().GetSelectedClockInfo(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SelectCloudChannel(ctx context.Context, ch proto.CloudChannel) error {
	return c.run(ctx, c.Command().SelectCloudChannel(ch), nil)
}

func (c *Client) SelectVisualizer(ctx context.Context, index int) error {
	return c.run(ctx, c.Command().SelectVisualizer(index), nil)
}

func (c *Client) SelectCustomPage(ctx context.Context, index int) error {
	return c.run(ctx, c.Command().SelectCustomPage(index), nil)
}

func (c *Client) GetDeviceSettings(ctx context.Context) (*proto.SettingsResponse, error) {
	var resp proto.SettingsResponse
	if err := c.run(ctx, c.Command().GetDeviceSettings(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetDeviceTime(ctx context.Context) (time.Time, error) {
	var resp proto.DeviceTimeResponse
	if err := c.run(ctx, c.Command().GetDeviceTime(), &resp); err != nil {
		return time.Time{}, err
	}
	return time.Unix(resp.UTCTime, 0), nil
}

func (c *Client) SetBrightness(ctx context.Context, brightness int) error {
	return c.run(ctx, c.Command().SetBrightness(brightness), nil)
}

func (c *Client) SetTime(ctx context.Context, t time.Time) error {
	return c.run(ctx, c.Command().SetTime(t), nil)
}

func (c *Client) SetHighLightMode(ctx context.Context, mode proto.Switch) error {
	return c.run(ctx, c.Command().SetHighLightMode(mode), nil)
}

func (c *Client) SetHourMode(ctx context.Context, mode proto.HourMode) error {
	return c.run(ctx, c.Command().SetHourMode(mode), nil)
}

func (c *Client) SetMirrorMode(ctx context.Context, mode proto.Switch) error {
	return c.run(ctx, c.Command().SetMirrorMode(mode), nil)
}

func (c *Client) SetRotationAngle(ctx context.Context, angle proto.RotationAngle) error {
	return c.run(ctx, c.Command().SetRotationAngle(angle), nil)
}

func (c *Client) SetScreenPower(ctx context.Context, state proto.Switch) error {
	return c.run(ctx, c.Command().SetScreenPower(state), nil)
}

func (c *Client) SetTemperatureUnit(ctx context.Context, unit proto.TemperatureUnit) error {
	return c.run(ctx, c.Command().SetTemperatureUnit(unit), nil)
}

func (c *Client) SetTimeZone(ctx context.Context, zone string) error {
	return c.run(ctx, c.Command().SetTimeZone(zone), nil)
}

func (c *Client) SetWeatherArea(ctx context.Context, longitude, latitude string) error {
	return c.run(ctx, c.Command().SetWeatherArea(longitude, latitude), nil)
}

func (c *Client) SetWhiteBalance(ctx context.Context, r, g, b int) error {
	return c.run(ctx, c.Command().SetWhiteBalance(r, g, b), nil)
}

func (c *Client) SetCountdown(ctx context.Context, d time.Duration, action proto.ToolAction) error {
	return c.run(ctx, c.Command().SetCountdown(d, action), nil)
}

func (c *Client) SetNoise(ctx context.Context, action proto.ToolAction) error {
	return c.run(ctx, c.Command().SetNoise(action), nil)
}

func (c *Client) SetScoreboard(ctx context.Context, blue, red int) error {
	return c.run(ctx, c.Command().SetScoreboard(blue, red), nil)
}

func (c *Client) SetStopwatch(ctx context.Context, action proto.StopwatchAction) error {
	return c.run(ctx, c.Command().SetStopwatch(action), nil)
}

func (c *Client) PlayGifFile(ctx context.Context, source proto.FileSource, name string) error {
	return c.run(ctx, c.Command().PlayGifFile(source, name), nil)
}

func (c *Client) GetNextAnimationID(ctx context.Context) (int, error) {
	return nextAnimationID(ctx, c.tr)
}

func (c *Client) ResetNextAnimationID(ctx context.Context) error {
	return c.run(ctx, c.Command().ResetNextAnimationID(), nil)
}

// SendImageAnimation uploads every frame in one batched request. Use
// animation.IDAuto to let the device pick the id.
func (c *Client) SendImageAnimation(ctx context.Context, id int, anim *animation.Animation) error {
	b := c.Batch()
	if id == animation.IDAuto {
		b.SendImageAnimationAuto(ctx, anim)
	} else {
		b.SendImageAnimation(id, anim)
	}
	return c.run(ctx, b, nil)
}

// StreamImageAnimation uploads one frame per request, which keeps requests
// small for 64x64 animations. It stops at the first failure, leaving the
// device with the frames sent so far. progress, if set, is called after each
// frame.
func (c *Client) StreamImageAnimation(ctx context.Context, id int, anim *animation.Animation, progress func(sent, total int)) error {
	if id == animation.IDAuto {
		next, err := nextAnimationID(ctx, c.tr)
		if err != nil {
			return err
		}
		id = next
	}

	reqs := FrameRequests(id, anim)
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return err
		}

		b := c.Command()
		b.add(req)
		if err := c.run(ctx, b, nil); err != nil {
			return err
		}

		if progress != nil {
			progress(i+1, len(reqs))
		}
	}

	return nil
}

func (c *Client) SendTextAnimation(ctx context.Context, text *TextAnimation) error {
	return c.run(ctx, c.Command().SendTextAnimation(text), nil)
}

func (c *Client) ClearAllText(ctx context.Context) error {
	return c.run(ctx, c.Command().ClearAllText(), nil)
}

func (c *Client) PlayBuzzer(ctx context.Context, active, off, total time.Duration) error {
	return c.run(ctx, c.Command().PlayBuzzer(active, off, total), nil)
}

func (c *Client) ExecuteFromURL(ctx context.Context, url string) error {
	return c.run(ctx, c.Command().ExecuteFromURL(url), nil)
}

// ExecuteRaw sends pre-serialized fragments as one batch and returns the raw
// answer.
func (c *Client) ExecuteRaw(ctx context.Context, fragments ...string) ([]byte, error) {
	b := c.Batch()
	for _, f := range fragments {
		b.Raw(f)
	}
	return b.Execute(ctx)
}
