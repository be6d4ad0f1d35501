package model

// FlashKind classifies a one-time status message.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a status message shown on exactly one rendered page after a redirect.
// Key is a translation key such as "cultural_heritage.created".
type Flash struct {
	Kind FlashKind `json:"kind"`
	Key  string    `json:"key"`
}
