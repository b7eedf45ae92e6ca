package utils

import (
	"time"
)

var cstLocation = loadCST()

func loadCST() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// TimeNowCST returns the current time in China Standard Time, the exchange timezone.
func TimeNowCST() time.Time {
	return time.Now().In(cstLocation)
}

// PrettyDate formats t in exchange time for notifications.
func PrettyDate(t time.Time) string {
	return t.In(cstLocation).Format("2006-01-02 15:04:05")
}

// SameDay reports whether a and b fall on the same exchange calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(cstLocation).Date()
	by, bm, bd := b.In(cstLocation).Date()
	return ay == by && am == bm && ad == bd
}
