package service

import (
	"context"
)

// SameLANDevices lists devices on the caller's network.
func (c *Client) SameLANDevices(ctx context.Context) ([]Device, error) {
	var resp struct {
		DeviceList []Device `json:"DeviceList"`
	}
	if err := c.post(ctx, pathSameLANDevices, nil, &resp); err != nil {
		return nil, err
	}
	return resp.DeviceList, nil
}

func (c *Client) ClockTypes(ctx context.Context) ([]string, error) {
	var resp struct {
		DialTypeList []string `json:"DialTypeList"`
	}
	if err := c.post(ctx, pathClockTypes, nil, &resp); err != nil {
		return nil, err
	}
	return resp.DialTypeList, nil
}

// ClockList returns one page of clock faces of the given type. Pages start
// at 1.
func (c *Client) ClockList(ctx context.Context, dialType string, page int) (*ClockPage, error) {
	var resp ClockPage
	if err := c.post(ctx, pathClockList, &clockListRequest{DialType: dialType, Page: page}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Fonts(ctx context.Context) ([]Font, error) {
	var resp struct {
		FontList []Font `json:"FontList"`
	}
	if err := c.post(ctx, pathFontList, nil, &resp); err != nil {
		return nil, err
	}
	return resp.FontList, nil
}
