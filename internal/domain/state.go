package domain

import "encoding/json"

// Messages shown inside the widget when loading fails.
const (
	MessageFetchFailed = "Gagal mengambil data GitHub"
	MessageUnexpected  = "Terjadi kesalahan"
	MessageRateLimited = "Terlalu banyak permintaan, coba lagi nanti"
)

// FailureKind distinguishes why a widget load failed.
// Both kinds render the same way.
type FailureKind int

const (
	// FetchFailure means the profile endpoint answered with a non-success status.
	FetchFailure FailureKind = iota + 1
	// UnexpectedFailure covers transport and decode errors.
	UnexpectedFailure
)

func (k FailureKind) String() string {
	switch k {
	case FetchFailure:
		return "fetch_failure"
	case UnexpectedFailure:
		return "unexpected_failure"
	default:
		return "unknown"
	}
}

// WidgetState is the render mode of the GitHub section.
// The only implementations are Loading, Failed and Ready.
type WidgetState interface {
	Status() string
	widgetState()
}

// Loading is the state between mount and settlement.
type Loading struct{}

// Failed is the terminal state after any failure. Partial results are never kept.
type Failed struct {
	Kind    FailureKind
	Message string
}

// Ready is the terminal state after all three fetches succeeded.
type Ready struct {
	Snapshot
}

func (Loading) Status() string { return "loading" }
func (Failed) Status() string  { return "error" }
func (Ready) Status() string   { return "ready" }

func (Loading) widgetState() {}
func (Failed) widgetState()  {}
func (Ready) widgetState()   {}

// NewFailed builds a Failed state, substituting the generic message when msg is empty.
func NewFailed(kind FailureKind, msg string) Failed {
	if msg == "" {
		msg = MessageUnexpected
	}
	return Failed{Kind: kind, Message: msg}
}

type stateJSON struct {
	Status  string    `json:"status"`
	Kind    string    `json:"kind,omitempty"`
	Message string    `json:"message,omitempty"`
	Data    *Snapshot `json:"data,omitempty"`
}

// MarshalState encodes any WidgetState as a tagged JSON object.
func MarshalState(s WidgetState) ([]byte, error) {
	out := stateJSON{Status: s.Status()}
	switch v := s.(type) {
	case Failed:
		out.Kind = v.Kind.String()
		out.Message = v.Message
	case Ready:
		snap := v.Snapshot
		out.Data = &snap
	}
	return json.MarshalIndent(out, "", "  ")
}
