package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the default salon timezone and
// finally to a fixed UTC+7 zone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*60*60)
}
