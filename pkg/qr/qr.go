package qr

import (
	"fmt"
	"net/url"
)

const (
	endpoint    = "https://api.qrserver.com/v1/create-qr-code/"
	defaultSize = 240
)

// ImageURL returns the external rendering URL for a check-in token. The
// service never fetches the image itself: the URL is handed to clients and
// the renderer is treated as an untrusted, replaceable collaborator. The
// only property relied on is that the token string round-trips unchanged
// through render and scan.
func ImageURL(token string, size int) string {
	if size <= 0 {
		size = defaultSize
	}
	v := url.Values{}
	v.Set("size", fmt.Sprintf("%dx%d", size, size))
	v.Set("data", token)
	return endpoint + "?" + v.Encode()
}
