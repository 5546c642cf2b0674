package virtual

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pixoo/pkg/proto"
)

func ok(fields map[string]interface{}) ([]byte, error) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["error_code"] = 0
	return json.Marshal(fields)
}

func (d *Device) handle(command string, raw []byte) ([]byte, error) {
	d.commands = append(d.commands, command)

	switch command {
	case proto.CommandChannelSelect:
		var req proto.SelectChannelRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrap(err, "virtual device")
		}
		d.channel = req.SelectIndex
		d.l.With(zap.Int("channel", req.SelectIndex)).Info("select-channel")

	case proto.CommandChannelGetCurrent:
		return ok(map[string]interface{}{"SelectIndex": d.channel})

	case proto.CommandSystemSetBrightness:
		var req proto.BrightnessRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrap(err, "virtual device")
		}
		d.brightness = req.Brightness
		d.l.With(zap.Int("brightness", req.Brightness)).Info("set-brightness")

	case proto.CommandSystemSetScreenPower:
		var req proto.ScreenPowerRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrap(err, "virtual device")
		}
		d.screen = req.OnOff
		d.l.With(zap.Int("on", req.OnOff)).Info("screen-power")

	case proto.CommandSystemGetSettings:
		return ok(map[string]interface{}{
			"Brightness":      d.brightness,
			"LightSwitch":     d.screen,
			"CurClockId":      0,
			"Time24Flag":      1,
			"RotationFlag":    0,
			"TemperatureMode": 0,
		})

	case proto.CommandSystemGetTime:
		now := time.Now()
		return ok(map[string]interface{}{
			"UTCTime":   now.Unix(),
			"LocalTime": now.Format("2006-01-02 15:04:05"),
		})

	case proto.CommandAnimationGetNextID:
		return ok(map[string]interface{}{"PicId": d.nextID})

	case proto.CommandAnimationResetNextID:
		d.nextID = 1
		d.frames = make(map[int]map[int][]byte)

	case proto.CommandAnimationSendFrame:
		var req proto.SendFrameRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrap(err, "virtual device")
		}
		if d.frames[req.PicID] == nil {
			d.frames[req.PicID] = make(map[int][]byte)
		}
		d.frames[req.PicID][req.PicOffset] = req.PicData
		if req.PicID >= d.nextID {
			d.nextID = req.PicID + 1
		}
		d.l.With(
			zap.Int("id", req.PicID),
			zap.Int("offset", req.PicOffset),
			zap.Int("total", req.PicNum),
			zap.Int("width", req.PicWidth),
		).Info("send-frame")

	case proto.CommandAnimationSendText:
		var req proto.SendTextRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrap(err, "virtual device")
		}
		if d.texts == nil {
			d.texts = make(map[int]string)
		}
		d.texts[req.TextID] = req.TextString
		d.l.With(zap.Int("id", req.TextID), zap.String("text", req.TextString)).Info("send-text")

	case proto.CommandAnimationClearText:
		d.texts = nil

	default:
		d.l.With(zap.String("command", command)).Info("accept")
	}

	return ok(nil)
}
