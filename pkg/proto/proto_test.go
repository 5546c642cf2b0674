package proto

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	var info ClockInfoResponse
	require.NoError(t, Decode([]byte(`{"error_code":0,"ClockId":12,"Brightness":80}`), &info))
	assert.Equal(t, ClockInfoResponse{ClockID: 12, Brightness: 80}, info)

	err := Decode([]byte(`{"error_code":7}`), nil)
	var de *DeviceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 7, de.Code)
	assert.Empty(t, de.Message)

	err = Decode([]byte(`{"error_code":1,"error_message":"unknown command"}`), nil)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "unknown command", de.Message)
	assert.EqualError(t, err, "device error 1: unknown command")

	assert.Error(t, Decode([]byte(`not json`), nil))
}

func TestRequestEncoding(t *testing.T) {
	bs, err := json.Marshal(&SendFrameRequest{
		Head:      NewHead(CommandAnimationSendFrame),
		PicNum:    2,
		PicWidth:  16,
		PicOffset: 1,
		PicID:     5,
		PicSpeed:  100,
		PicData:   []byte{255, 0, 0},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Command":"Draw/SendHttpGif","PicNum":2,"PicWidth":16,"PicOffset":1,"PicId":5,"PicSpeed":100,"PicData":"/wAA"}`, string(bs))

	bs, err = json.Marshal(&SendTextRequest{
		Head:       NewHead(CommandAnimationSendText),
		TextID:     1,
		TextWidth:  16,
		Speed:      100,
		TextString: "hi",
		Color:      "#FF0000",
		Align:      int(AlignLeft),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Command":"Draw/SendHttpText","TextId":1,"x":0,"y":0,"dir":0,"font":0,"TextWidth":16,"speed":100,"TextString":"hi","color":"#FF0000","align":1}`, string(bs))
}

func TestEnums(t *testing.T) {
	ch, err := ParseChannelType("Visualizer")
	require.NoError(t, err)
	assert.Equal(t, ChannelVisualizer, ch)

	raw, err := ParseRotationAngle("9")
	require.NoError(t, err)
	assert.Equal(t, RotationAngle(9), raw)
	assert.Equal(t, "9", raw.String())
	assert.Equal(t, "180", Rotate180.String())

	align, err := ParseTextAlign("middle")
	require.NoError(t, err)
	assert.Equal(t, 2, int(align))

	_, err = ParseStopwatchAction("pause")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stop, start, reset")
}

func TestHTTPTransport(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bs, _ := io.ReadAll(r.Body)
		got = string(bs)
		if r.URL.Path != PostPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"error_code":0}`))
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	body, err := tr.Post(context.Background(), PostPath, `{"Command":"Channel/GetIndex"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"error_code":0}`, string(body))
	assert.Equal(t, `{"Command":"Channel/GetIndex"}`, got)

	_, err = tr.Post(context.Background(), "/missing", "{}")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://192.168.0.2", BaseURL("192.168.0.2"))
	assert.Equal(t, "https://pixoo.local", BaseURL("https://pixoo.local/"))
}
