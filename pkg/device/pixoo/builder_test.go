package pixoo

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pixoo/pkg/animation"
	"pixoo/pkg/device/virtual"
	"pixoo/pkg/mixer"
	"pixoo/pkg/proto"
)

func testAnimation(t *testing.T, frames int) *animation.Animation {
	t.Helper()
	b, err := animation.New(16, 100*time.Millisecond)
	require.NoError(t, err)

	for i := 0; i < frames; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		img.SetNRGBA(0, 0, color.NRGBA{R: uint8(i), A: 255})
		b.BuildFrame(i).DrawFit(img, mixer.Stretch)
	}
	return b.Export()
}

type batch struct {
	Command     string
	CommandList []proto.SendFrameRequest
}

func TestSendImageAnimationExpandsFrames(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))

	anim := testAnimation(t, 5)
	count, payload, err := c.Batch().SendImageAnimation(3, anim).Build()
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	var env batch
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.Equal(t, proto.CommandBatchExecute, env.Command)
	require.Len(t, env.CommandList, 5)

	for i, f := range env.CommandList {
		assert.Equal(t, proto.CommandAnimationSendFrame, f.Command)
		assert.Equal(t, i, f.PicOffset)
		assert.Equal(t, 3, f.PicID)
		assert.Equal(t, 5, f.PicNum)
		assert.Equal(t, 16, f.PicWidth)
		assert.Equal(t, 100, f.PicSpeed)
		assert.Equal(t, anim.Frames[i], f.PicData)
	}
}

func TestSendImageAnimationAutoID(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))
	ctx := context.Background()

	require.NoError(t, c.SendImageAnimation(ctx, 7, testAnimation(t, 1)))
	require.NoError(t, c.SendImageAnimation(ctx, animation.IDAuto, testAnimation(t, 2)))

	assert.Len(t, dev.Frames(7), 1)
	assert.Len(t, dev.Frames(8), 2)
	assert.Equal(t, []string{
		proto.CommandAnimationSendFrame,
		proto.CommandAnimationGetNextID,
		proto.CommandAnimationSendFrame,
		proto.CommandAnimationSendFrame,
	}, dev.Commands())
}

func TestBuilderRejectsUnresolvedID(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))

	_, _, err := c.Batch().SendImageAnimation(animation.IDAuto, testAnimation(t, 2)).Build()
	assert.True(t, errors.Is(err, ErrUnresolvedID))

	_, err = c.Batch().SendImageAnimation(animation.IDAuto, testAnimation(t, 2)).Execute(context.Background())
	assert.True(t, errors.Is(err, ErrUnresolvedID))
	assert.Empty(t, dev.Payloads())

	count, payload, err := c.Batch().SendImageAnimationAuto(context.Background(), testAnimation(t, 2)).Build()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var env batch
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	for _, f := range env.CommandList {
		assert.Equal(t, 1, f.PicID)
	}
}

func TestSingleBuilderRejectsMultiFrameAnimation(t *testing.T) {
	c := New("pixoo", WithTransport(virtual.New(zap.NewNop())))

	_, _, err := c.Command().SendImageAnimation(1, testAnimation(t, 3)).Build()
	assert.True(t, errors.Is(err, ErrSingleAnimation))

	count, _, err := c.Command().SendImageAnimation(1, testAnimation(t, 1)).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSingleModeSendsLastCommand(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))

	_, err := c.Command().SetBrightness(10).SetBrightness(40).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{`{"Command":"Channel/SetBrightness","Brightness":40}`}, dev.Payloads())
	assert.Equal(t, 40, dev.Brightness())
}

func TestEmptyPayloadSendsNothing(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))

	_, err := c.Batch().Execute(context.Background())
	assert.True(t, errors.Is(err, proto.ErrEmptyPayload))

	_, err = c.Command().Execute(context.Background())
	assert.True(t, errors.Is(err, proto.ErrEmptyPayload))

	assert.Empty(t, dev.Payloads())
}

func TestDeviceErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error_code":7}`))
	}))
	defer srv.Close()

	err := New(srv.URL).SetBrightness(context.Background(), 50)

	var de *proto.DeviceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 7, de.Code)
}

func TestTransportErrorIsReturnedAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL).SetBrightness(context.Background(), 50)

	var se *proto.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)

	boom := errors.New("unplugged")
	c := New("pixoo", WithTransport(virtual.New(zap.NewNop(), virtual.WithPostError(boom))))
	assert.Equal(t, boom, c.SetBrightness(context.Background(), 50))
}

func TestBatchedCommandsOverHTTP(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bs, _ := io.ReadAll(r.Body)
		body = string(bs)
		_, _ = w.Write([]byte(`{"error_code":0}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Batch().
		SelectChannel(proto.ChannelCloud).
		SetCountdown(90*time.Second, proto.ToolStart).
		SendTextAnimation(&TextAnimation{ID: 2, Text: "hi", Color: color.NRGBA{R: 255, G: 255, A: 255}, Align: proto.AlignRight, Width: 16}).
		Execute(context.Background())
	require.NoError(t, err)

	assert.JSONEq(t, `{"Command":"Draw/CommandList","CommandList":[
		{"Command":"Channel/SetIndex","SelectIndex":1},
		{"Command":"Tools/SetTimer","Minute":1,"Second":30,"Status":1},
		{"Command":"Draw/SendHttpText","TextId":2,"x":0,"y":0,"dir":0,"font":0,"TextWidth":16,"speed":0,"TextString":"hi","color":"#FFFF00","align":3}
	]}`, body)
}

func TestRawFragments(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))

	_, err := c.ExecuteRaw(context.Background(), `{"Command":"Channel/SetIndex","SelectIndex":2}`)
	require.NoError(t, err)
	assert.Equal(t, proto.ChannelVisualizer, dev.Channel())

	_, err = c.ExecuteRaw(context.Background(), `{"Command":`)
	var se *proto.SerializationError
	assert.True(t, errors.As(err, &se))
	assert.Len(t, dev.Payloads(), 1)
}

func TestStreamStopsAtFirstFailure(t *testing.T) {
	dev := virtual.New(zap.NewNop(), virtual.WithFailure(2, 5))
	c := New("pixoo", WithTransport(dev))

	var sent []int
	err := c.StreamImageAnimation(context.Background(), 1, testAnimation(t, 4), func(n, total int) {
		assert.Equal(t, 4, total)
		sent = append(sent, n)
	})

	var de *proto.DeviceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 5, de.Code)
	assert.Equal(t, []int{1, 2}, sent)
	assert.Len(t, dev.Payloads(), 3)
	assert.Len(t, dev.Frames(1), 2)
}

func TestStreamSendsEveryFrame(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))

	anim := testAnimation(t, 3)
	require.NoError(t, c.StreamImageAnimation(context.Background(), animation.IDAuto, anim, nil))
	assert.Equal(t, anim.Frames, dev.Frames(1))
}

func TestTypedQueries(t *testing.T) {
	dev := virtual.New(zap.NewNop())
	c := New("pixoo", WithTransport(dev))
	ctx := context.Background()

	require.NoError(t, c.SelectChannel(ctx, proto.ChannelCustomPage))
	ch, err := c.GetCurrentChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, proto.ChannelCustomPage, ch)

	require.NoError(t, c.SetBrightness(ctx, 33))
	settings, err := c.GetDeviceSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 33, settings.Brightness)

	id, err := c.GetNextAnimationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	now, err := c.GetDeviceTime(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
