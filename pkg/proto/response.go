package proto

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Response is the part every device answer shares.
type Response struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Decode checks the embedded error code of body and, when v is not nil,
// unmarshals the command specific fields into it.
func Decode(body []byte, v interface{}) error {
	var r Response
	if err := json.Unmarshal(body, &r); err != nil {
		return errors.Wrap(err, "decode response")
	}

	if r.ErrorCode != 0 {
		return &DeviceError{Code: r.ErrorCode, Message: r.ErrorMessage}
	}

	if v == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(body, v), "decode response payload")
}

type NextAnimationIDResponse struct {
	PicID int `json:"PicId"`
}

type CurrentChannelResponse struct {
	SelectIndex int `json:"SelectIndex"`
}

type ClockInfoResponse struct {
	ClockID    int `json:"ClockId"`
	Brightness int `json:"Brightness"`
}

type DeviceTimeResponse struct {
	UTCTime   int64  `json:"UTCTime"`
	LocalTime string `json:"LocalTime"`
}

type SettingsResponse struct {
	Brightness          int `json:"Brightness"`
	RotationFlag        int `json:"RotationFlag"`
	ClockTime           int `json:"ClockTime"`
	GalleryTime         int `json:"GalleryTime"`
	SingleGalleyTime    int `json:"SingleGalleyTime"`
	PowerOnChannelID    int `json:"PowerOnChannelId"`
	GalleryShowTimeFlag int `json:"GalleryShowTimeFlag"`
	CurClockID          int `json:"CurClockId"`
	Time24Flag          int `json:"Time24Flag"`
	TemperatureMode     int `json:"TemperatureMode"`
	GyrateAngle         int `json:"GyrateAngle"`
	MirrorFlag          int `json:"MirrorFlag"`
	LightSwitch         int `json:"LightSwitch"`
}
