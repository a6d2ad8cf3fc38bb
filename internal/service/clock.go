package service

import "time"

// systemClock is the production [Clock] backed by the server's local time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
