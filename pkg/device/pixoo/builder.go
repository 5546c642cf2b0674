package pixoo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"pixoo/pkg/animation"
	"pixoo/pkg/proto"
)

var (
	// ErrUnresolvedID is kept by SendImageAnimation when given animation.IDAuto.
	ErrUnresolvedID = errors.New("animation id is not resolved, use SendImageAnimationAuto")
	// ErrSingleAnimation is kept by SendImageAnimation when a single command
	// builder would drop every frame but the last.
	ErrSingleAnimation = errors.New("multi-frame animation needs a batched builder")
)

// CommandBuilder collects commands into one store and sends them in a single
// request. Every method returns the builder so calls chain. A builder is used
// once: Execute finalizes its store.
type CommandBuilder struct {
	tr    proto.Transport
	store proto.Store
	log   *zap.Logger
	err   error
}

func newCommandBuilder(tr proto.Transport, mode proto.Mode, logger *zap.Logger) *CommandBuilder {
	return &CommandBuilder{
		tr:    tr,
		store: proto.NewStore(mode),
		log:   logger,
	}
}

func (b *CommandBuilder) Mode() proto.Mode {
	return b.store.Mode()
}

// Err reports the first serialization failure, if any.
func (b *CommandBuilder) Err() error {
	return b.err
}

func (b *CommandBuilder) add(req proto.Request) *CommandBuilder {
	if b.err != nil {
		return b
	}

	bs, err := json.Marshal(req)
	if err != nil {
		b.err = &proto.SerializationError{Command: req.CommandName(), Err: err}
		return b
	}

	b.store.Append(string(bs))
	return b
}

// Raw appends a fragment the caller serialized already.
func (b *CommandBuilder) Raw(fragment string) *CommandBuilder {
	if b.err != nil {
		return b
	}
	if !json.Valid([]byte(fragment)) {
		b.err = &proto.SerializationError{Command: "raw", Err: errors.New("fragment is not valid json")}
		return b
	}

	b.store.Append(fragment)
	return b
}

func (b *CommandBuilder) SelectChannel(ch proto.ChannelType) *CommandBuilder {
	return b.add(&proto.SelectChannelRequest{Head: proto.NewHead(proto.CommandChannelSelect), SelectIndex: int(ch)})
}

func (b *CommandBuilder) GetCurrentChannel() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandChannelGetCurrent))
}

func (b *CommandBuilder) SelectClock(id int) *CommandBuilder {
	return b.add(&proto.SelectClockRequest{Head: proto.NewHead(proto.CommandChannelSelectClock), ClockID: id})
}

func (b *CommandBuilder) GetSelectedClockInfo() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandChannelGetClockInfo))
}

func (b *CommandBuilder) SelectCloudChannel(ch proto.CloudChannel) *CommandBuilder {
	return b.add(&proto.SelectCloudChannelRequest{Head: proto.NewHead(proto.CommandChannelSelectCloud), Index: int(ch)})
}

func (b *CommandBuilder) SelectVisualizer(index int) *CommandBuilder {
	return b.add(&proto.SelectVisualizerRequest{Head: proto.NewHead(proto.CommandChannelSelectVisualizer), EqPosition: index})
}

func (b *CommandBuilder) SelectCustomPage(index int) *CommandBuilder {
	return b.add(&proto.SelectCustomPageRequest{Head: proto.NewHead(proto.CommandChannelSelectCustomPage), CustomPageIndex: index})
}

func (b *CommandBuilder) GetDeviceSettings() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandSystemGetSettings))
}

func (b *CommandBuilder) GetDeviceTime() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandSystemGetTime))
}

func (b *CommandBuilder) SetBrightness(brightness int) *CommandBuilder {
	return b.add(&proto.BrightnessRequest{Head: proto.NewHead(proto.CommandSystemSetBrightness), Brightness: brightness})
}

func (b *CommandBuilder) SetTime(t time.Time) *CommandBuilder {
	return b.add(&proto.SetTimeRequest{Head: proto.NewHead(proto.CommandSystemSetTime), UTC: t.Unix()})
}

func (b *CommandBuilder) SetHighLightMode(mode proto.Switch) *CommandBuilder {
	return b.mode(proto.CommandSystemSetHighLight, int(mode))
}

func (b *CommandBuilder) SetHourMode(mode proto.HourMode) *CommandBuilder {
	return b.mode(proto.CommandSystemSetHourMode, int(mode))
}

func (b *CommandBuilder) SetMirrorMode(mode proto.Switch) *CommandBuilder {
	return b.mode(proto.CommandSystemSetMirrorMode, int(mode))
}

func (b *CommandBuilder) SetRotationAngle(angle proto.RotationAngle) *CommandBuilder {
	return b.mode(proto.CommandSystemSetRotation, int(angle))
}

func (b *CommandBuilder) SetTemperatureUnit(unit proto.TemperatureUnit) *CommandBuilder {
	return b.mode(proto.CommandSystemSetTemperature, int(unit))
}

func (b *CommandBuilder) mode(command string, mode int) *CommandBuilder {
	return b.add(&proto.ModeRequest{Head: proto.NewHead(command), Mode: mode})
}

func (b *CommandBuilder) SetScreenPower(state proto.Switch) *CommandBuilder {
	return b.add(&proto.ScreenPowerRequest{Head: proto.NewHead(proto.CommandSystemSetScreenPower), OnOff: int(state)})
}

// SetTimeZone takes the device's own zone naming, e.g. "GMT-5".
func (b *CommandBuilder) SetTimeZone(zone string) *CommandBuilder {
	return b.add(&proto.TimeZoneRequest{Head: proto.NewHead(proto.CommandSystemSetTimeZone), TimeZoneValue: zone})
}

func (b *CommandBuilder) SetWeatherArea(longitude, latitude string) *CommandBuilder {
	return b.add(&proto.WeatherAreaRequest{
		Head:      proto.NewHead(proto.CommandSystemSetWeatherArea),
		Longitude: longitude,
		Latitude:  latitude,
	})
}

func (b *CommandBuilder) SetWhiteBalance(r, g, bl int) *CommandBuilder {
	return b.add(&proto.WhiteBalanceRequest{Head: proto.NewHead(proto.CommandSystemSetWhiteBalance), R: r, G: g, B: bl})
}

func (b *CommandBuilder) SetCountdown(d time.Duration, action proto.ToolAction) *CommandBuilder {
	secs := int(d / time.Second)
	return b.add(&proto.CountdownRequest{
		Head:   proto.NewHead(proto.CommandToolCountdown),
		Minute: secs / 60,
		Second: secs % 60,
		Status: int(action),
	})
}

func (b *CommandBuilder) SetNoise(action proto.ToolAction) *CommandBuilder {
	return b.add(&proto.NoiseRequest{Head: proto.NewHead(proto.CommandToolNoise), NoiseStatus: int(action)})
}

func (b *CommandBuilder) SetScoreboard(blue, red int) *CommandBuilder {
	return b.add(&proto.ScoreboardRequest{Head: proto.NewHead(proto.CommandToolScoreboard), BlueScore: blue, RedScore: red})
}

func (b *CommandBuilder) SetStopwatch(action proto.StopwatchAction) *CommandBuilder {
	return b.add(&proto.StopwatchRequest{Head: proto.NewHead(proto.CommandToolStopwatch), Status: int(action)})
}

func (b *CommandBuilder) PlayGifFile(source proto.FileSource, name string) *CommandBuilder {
	return b.add(&proto.PlayGifRequest{Head: proto.NewHead(proto.CommandAnimationPlayGif), FileType: int(source), FileName: name})
}

func (b *CommandBuilder) GetNextAnimationID() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandAnimationGetNextID))
}

func (b *CommandBuilder) ResetNextAnimationID() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandAnimationResetNextID))
}

// SendImageAnimation appends one frame command per frame, ordered by offset
// and all carrying id. id must be a device id; animation.IDAuto needs
// SendImageAnimationAuto. A single command builder only accepts one frame.
func (b *CommandBuilder) SendImageAnimation(id int, anim *animation.Animation) *CommandBuilder {
	if b.err != nil {
		return b
	}
	if id == animation.IDAuto {
		b.err = ErrUnresolvedID
		return b
	}
	if b.Mode() == proto.Single && anim.FrameCount > 1 {
		b.err = errors.Wrapf(ErrSingleAnimation, "%d frames", anim.FrameCount)
		return b
	}

	for _, req := range FrameRequests(id, anim) {
		b.add(req)
	}
	return b
}

// SendImageAnimationAuto asks the device for the next free animation id first.
// A failing lookup is kept and returned by Execute.
func (b *CommandBuilder) SendImageAnimationAuto(ctx context.Context, anim *animation.Animation) *CommandBuilder {
	if b.err != nil {
		return b
	}

	id, err := nextAnimationID(ctx, b.tr)
	if err != nil {
		b.err = errors.Wrap(err, "get next animation id")
		return b
	}

	return b.SendImageAnimation(id, anim)
}

func (b *CommandBuilder) SendTextAnimation(text *TextAnimation) *CommandBuilder {
	return b.add(text.request())
}

func (b *CommandBuilder) ClearAllText() *CommandBuilder {
	return b.add(proto.NewHead(proto.CommandAnimationClearText))
}

func (b *CommandBuilder) PlayBuzzer(active, off, total time.Duration) *CommandBuilder {
	return b.add(&proto.PlayBuzzerRequest{
		Head:              proto.NewHead(proto.CommandAnimationPlayBuzzer),
		ActiveTimeInCycle: int(active / time.Millisecond),
		OffTimeInCycle:    int(off / time.Millisecond),
		PlayTotalTime:     int(total / time.Millisecond),
	})
}

// ExecuteFromURL makes the device fetch its commands from url.
func (b *CommandBuilder) ExecuteFromURL(url string) *CommandBuilder {
	return b.add(&proto.CommandURLRequest{Head: proto.NewHead(proto.CommandBatchExecuteFromURL), CommandURL: url})
}

// Build finalizes the store and returns the fragment count and request body.
func (b *CommandBuilder) Build() (int, string, error) {
	if b.err != nil {
		return 0, "", b.err
	}

	count, payload := b.store.Finalize()
	return count, payload, nil
}

// Execute sends everything collected so far and checks the answer. The raw
// response body is returned for callers that need command specific fields.
func (b *CommandBuilder) Execute(ctx context.Context) ([]byte, error) {
	count, payload, err := b.Build()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, proto.ErrEmptyPayload
	}

	rid := xid.New().String()
	logger := b.log.With(
		zap.String("rid", rid),
		zap.String("mode", b.store.Mode().String()),
		zap.Int("commands", count),
		zap.String("size", bytesize.New(float64(len(payload))).String()),
	)
	logger.Debug("execute")

	body, err := b.tr.Post(ctx, proto.PostPath, payload)
	if err != nil {
		logger.With(zap.Error(err)).Debug("execute failed")
		return nil, err
	}

	if err := proto.Decode(body, nil); err != nil {
		logger.With(zap.Error(err)).Debug("device rejected")
		return nil, err
	}

	return body, nil
}

// FrameRequests expands anim into one frame command per frame, in ascending
// offset order.
func FrameRequests(id int, anim *animation.Animation) []*proto.SendFrameRequest {
	offsets := anim.Offsets()
	reqs := make([]*proto.SendFrameRequest, 0, len(offsets))
	for _, offset := range offsets {
		reqs = append(reqs, &proto.SendFrameRequest{
			Head:      proto.NewHead(proto.CommandAnimationSendFrame),
			PicNum:    anim.FrameCount,
			PicWidth:  anim.Size,
			PicOffset: offset,
			PicID:     id,
			PicSpeed:  anim.SpeedMs(),
			PicData:   anim.Frames[offset],
		})
	}
	return reqs
}

func nextAnimationID(ctx context.Context, tr proto.Transport) (int, error) {
	bs, err := json.Marshal(proto.NewHead(proto.CommandAnimationGetNextID))
	if err != nil {
		return 0, err
	}

	body, err := tr.Post(ctx, proto.PostPath, string(bs))
	if err != nil {
		return 0, err
	}

	var resp proto.NextAnimationIDResponse
	if err := proto.Decode(body, &resp); err != nil {
		return 0, err
	}
	return resp.PicID, nil
}
