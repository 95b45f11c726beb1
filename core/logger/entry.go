package logger

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// EventType names the kind of a LogEntry.
type EventType string

const (
	EventSessionStart      EventType = "session_start"
	EventSessionEnd        EventType = "session_end"
	EventRunBuiltin        EventType = "run_builtin"
	EventRunCommand        EventType = "run_command"
	EventUnknownCommand    EventType = "unknown_command"
	EventSpawnFailure      EventType = "spawn_failure"
	EventInvalidInvocation EventType = "invalid_invocation"
)

// LogEntry is a single logged event.
type LogEntry struct {
	TimestampMicros int64
	SessionID       string
	Type            EventType
	// Command holds the arguments of the command the event is about,
	// including the command name.
	Command    []string
	ExitStatus int
	Error      string
}

// Struct converts the entry to its wire representation.
func (le *LogEntry) Struct() (*structpb.Struct, error) {
	command := make([]interface{}, len(le.Command))
	for i, arg := range le.Command {
		command[i] = arg
	}

	fields := map[string]interface{}{
		"timestamp_micros": le.TimestampMicros,
		"session_id":       le.SessionID,
		"type":             string(le.Type),
		"command":          command,
		"exit_status":      le.ExitStatus,
	}
	if le.Error != "" {
		fields["error"] = le.Error
	}

	return structpb.NewStruct(fields)
}

// LogEntryFromStruct is the inverse of LogEntry.Struct.
func LogEntryFromStruct(s *structpb.Struct) (*LogEntry, error) {
	fields := s.GetFields()

	le := &LogEntry{
		TimestampMicros: int64(fields["timestamp_micros"].GetNumberValue()),
		SessionID:       fields["session_id"].GetStringValue(),
		Type:            EventType(fields["type"].GetStringValue()),
		ExitStatus:      int(fields["exit_status"].GetNumberValue()),
		Error:           fields["error"].GetStringValue(),
	}
	if le.Type == "" {
		return nil, fmt.Errorf("log entry missing type")
	}

	for _, v := range fields["command"].GetListValue().GetValues() {
		le.Command = append(le.Command, v.GetStringValue())
	}

	return le, nil
}
