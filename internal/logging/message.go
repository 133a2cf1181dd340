package logging

import (
	"time"

	"github.com/playpen/playpen/internal/resource"
)

// Message is the event payload for a log message
type Message struct {
	ID         resource.ID
	Time       time.Time
	Level      string
	Message    string `json:"msg"`
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger it
	// was emitted from). The higher the Serial number the newer the message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// BySerialDesc sorts log messages by their serial.
func BySerialDesc(i, j Message) int {
	if i.Serial < j.Serial {
		return 1
	}
	return -1
}
