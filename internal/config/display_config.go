package config

import "time"

type DisplayConfig interface {
	GetDisplayLocation() *time.Location
}

type Display struct{}

var _ DisplayConfig = Display{}

// GetDisplayLocation is the zone transaction timestamps are rendered in. Falls back to time.Local.
func (Display) GetDisplayLocation() *time.Location {
	name := GetEnv("DISPLAY_TIMEZONE", "")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
