package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixoo/pkg/proto"
)

func newServer(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL))
}

func TestSameLANDevices(t *testing.T) {
	c := newServer(t, map[string]string{
		pathSameLANDevices: `{"ReturnCode":0,"ReturnMessage":"","DeviceList":[{"DeviceName":"Pixoo","DeviceId":300000001,"DevicePrivateIP":"192.168.0.2"}]}`,
	})

	devices, err := c.SameLANDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Device{{Name: "Pixoo", ID: 300000001, PrivateIP: "192.168.0.2"}}, devices)
}

func TestReturnCode(t *testing.T) {
	c := newServer(t, map[string]string{
		pathClockTypes: `{"ReturnCode":1,"ReturnMessage":"busy"}`,
	})

	_, err := c.ClockTypes(context.Background())
	var de *proto.DeviceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Code)
	assert.Equal(t, "busy", de.Message)

	_, err = c.Fonts(context.Background())
	var se *proto.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestClockList(t *testing.T) {
	var got clockListRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ReturnCode":0,"ReturnMessage":"","TotalNum":100,"DialList":[{"ClockId":10,"Name":"Classic Digital Clock"}]}`))
	}))
	defer srv.Close()

	page, err := New(WithBaseURL(srv.URL)).ClockList(context.Background(), "Social", 2)
	require.NoError(t, err)
	assert.Equal(t, clockListRequest{DialType: "Social", Page: 2}, got)
	assert.Equal(t, 100, page.Total)
	assert.Equal(t, []Clock{{ID: 10, Name: "Classic Digital Clock"}}, page.Clocks)
}

func TestFonts(t *testing.T) {
	c := newServer(t, map[string]string{
		pathFontList: `{"ReturnCode":0,"ReturnMessage":"","FontList":[{"id":2,"name":"8*8","width":"8","high":"8","charset":"abc","type":1}]}`,
	})

	fonts, err := c.Fonts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Font{{ID: 2, Name: "8*8", Width: "8", Height: "8", Charset: "abc", Type: 1}}, fonts)
}
