// Package domain holds DTOs for resolve http and service contracts
package domain

import "time"

// Inputs

// DateInput resolves a calendar date at an hour in an optional zone
type DateInput struct {
	Date string `json:"date" validate:"required,max=64" example:"02-10-2020"`
	// Format is a preset name (iso, american) or a strftime pattern. Empty means iso
	Format string `json:"format,omitempty" validate:"omitempty,max=64,strftime" example:"american"`
	// Hour 0..23 selects the hour; 24 or more selects the end of the day
	Hour     uint   `json:"hour,omitempty" example:"18"`
	EndOfDay bool   `json:"end_of_day,omitempty" example:"false"`
	Zone     string `json:"zone,omitempty" validate:"omitempty,max=64" example:"Europe/Berlin"`
}

// EpochInput converts UNIX seconds
type EpochInput struct {
	Seconds uint64 `json:"seconds" example:"1587099600"`
}

// OffsetInput converts a wall clock reading taken at a fixed UTC offset
type OffsetInput struct {
	Text          string `json:"text" validate:"required,max=64" example:"2020-04-17 05:00:00.000"`
	OffsetMinutes int    `json:"offset_minutes" example:"120"`
}

// ExactInput names a local wall clock reading field by field
type ExactInput struct {
	Year   int `json:"year" example:"2023"`
	Month  int `json:"month" example:"11"`
	Day    int `json:"day" example:"5"`
	Hour   int `json:"hour" example:"1"`
	Minute int `json:"minute" example:"30"`
	Second int `json:"second" example:"0"`
}

// Outputs

// Instant is a resolved instant expressed in the server's local zone
type Instant struct {
	Local     string `json:"local" example:"2020-02-10T18:00:00-05:00"`
	Unix      int64  `json:"unix" example:"1581375600"`
	UnixMilli int64  `json:"unix_milli" example:"1581375600000"`
	Offset    string `json:"offset" example:"-05:00"`
	Zone      string `json:"zone" example:"America/New_York"`
	Date      string `json:"date" example:"2020-02-10"`
	// Ambiguous is set when the wall clock occurred twice; Alternate is the later reading
	Ambiguous bool       `json:"ambiguous"`
	Alternate *time.Time `json:"alternate,omitempty" example:"2023-11-05T01:30:00-05:00"`
}

// ExactOutput reports whether the exact local reading exists
type ExactOutput struct {
	Found   bool     `json:"found"`
	Instant *Instant `json:"instant,omitempty"`
}

// ZoneOutput describes a zone as of now
type ZoneOutput struct {
	Name          string `json:"name" example:"Europe/Berlin"`
	Abbreviation  string `json:"abbreviation" example:"CET"`
	Offset        string `json:"offset" example:"+01:00"`
	OffsetSeconds int    `json:"offset_seconds" example:"3600"`
	DST           bool   `json:"dst"`
	Now           string `json:"now" example:"2026-01-15T10:00:00+01:00"`
}
