package logger

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       int        `json:"sessions"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Builtins           StrCounter   `json:"builtins"`
	Commands           StrCounter   `json:"commands"`
	ExitStatuses       StrCounter   `json:"exit_statuses"`
	UnknownCommands    *PathCounter `json:"unknown_commands"`
	SpawnFailures      *PathCounter `json:"spawn_failures"`
	InvalidInvocations *PathCounter `json:"invalid_invocations"`
}

func NewReport() *Report {
	return &Report{
		UnknownCommands:    NewPathCounter("command", "error"),
		SpawnFailures:      NewPathCounter("command", "error"),
		InvalidInvocations: NewPathCounter("command", "error"),
	}
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	name := ""
	if len(le.Command) > 0 {
		name = le.Command[0]
	}

	switch le.Type {
	case EventSessionStart:
		r.Sessions++
	case EventSessionEnd:
		// Ignore
	case EventRunBuiltin:
		r.Builtins.Increment(name)
	case EventRunCommand:
		r.Commands.Increment(name)
		r.ExitStatuses.Increment(fmt.Sprintf("%d", le.ExitStatus))
	case EventUnknownCommand:
		r.UnknownCommands.Increment(name, le.Error)
	case EventSpawnFailure:
		r.SpawnFailures.Increment(name, le.Error)
	case EventInvalidInvocation:
		r.InvalidInvocations.Increment(name, le.Error)
	default:
		r.InvalidEntries.Increment(string(le.Type))
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for the given key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of distinct tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count for the given tuple.
func (ctr *PathCounter) Get(key ...string) int {
	return ctr.internal[toKey(key...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
