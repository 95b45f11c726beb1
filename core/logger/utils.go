package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures events for later review.
type Logger struct {
	Record LogRecorder

	// Now is the time source for entries, defaults to time.Now.
	Now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			s, err := le.Struct()
			if err != nil {
				return err
			}
			entry, err := protojson.Marshal(s)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var rawEntry json.RawMessage
		if err := decoder.Decode(&rawEntry); err != nil {
			return err
		}

		var s structpb.Struct
		if err := protojson.Unmarshal(rawEntry, &s); err != nil {
			return err
		}

		logEntry, err := LogEntryFromStruct(&s)
		if err != nil {
			return err
		}

		handler(logEntry)
	}
	return nil
}

func (l *Logger) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

// NewSession creates a logger with attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// Record stamps the entry with the time and session ID and records it.
// Recording to a nil SessionLogger does nothing.
func (l *SessionLogger) Record(le *LogEntry) error {
	if l == nil {
		return nil
	}

	le.TimestampMicros = l.now().UnixMicro()
	le.SessionID = l.sessionID
	return l.Logger.Record(le)
}

// SessionID returns the ID attached to every entry.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}
