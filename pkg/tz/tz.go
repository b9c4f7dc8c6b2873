package tz

import "time"

// Jakarta is the Asia/Jakarta location (WIB, UTC+7, no DST).
var Jakarta *time.Location

func init() {
	var err error
	Jakarta, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic("tz: load Asia/Jakarta: " + err.Error())
	}
}
