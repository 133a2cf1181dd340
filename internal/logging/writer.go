package logging

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/playpen/playpen/internal/resource"
)

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as playpen events.
type writer struct {
	table *resource.Table[Message]
	// max is the number of messages kept; ids holds them oldest first.
	max int
	ids []resource.ID

	mu     sync.Mutex
	serial uint
}

func (w *writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{
			ID:     resource.NewID(resource.Log),
			Serial: w.serial,
		}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		w.table.Add(msg.ID, msg)
		w.ids = append(w.ids, msg.ID)
		for len(w.ids) > w.max {
			w.table.Delete(w.ids[0])
			w.ids = w.ids[1:]
		}
		w.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	return len(p), nil
}
