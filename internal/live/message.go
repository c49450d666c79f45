// Package live runs the economic-model widget for one visitor over a
// WebSocket. The server owns the widget; the page only renders what it is
// sent and reports slider, preset and section events.
package live

import "algoeconomics/internal/chart"

// Message types.
const (
	// client -> server
	TypeInput   = "input"
	TypePreset  = "preset"
	TypeSection = "section"

	// server -> client
	TypeValue = "value"
	TypeText  = "text"
	TypeClass = "class"
	TypeChart = "chart"
	TypeError = "error"
)

// Message is one JSON frame in either direction. Which fields are set
// depends on Type.
type Message struct {
	Type string `json:"type"`

	// input
	Param string   `json:"param,omitempty"`
	Value *float64 `json:"value,omitempty"`

	// preset
	Name string `json:"name,omitempty"`

	// section
	Region string        `json:"region,omitempty"`
	Charts []chart.Named `json:"charts,omitempty"`

	// value, text, class, chart, section
	ID    string `json:"id,omitempty"`
	Text  string `json:"text,omitempty"`
	Class string `json:"class,omitempty"`
	Index *int   `json:"index,omitempty"`
	Mode  string `json:"mode,omitempty"`

	Message string `json:"message,omitempty"`
}

func errorMessage(text string) Message {
	return Message{Type: TypeError, Message: text}
}

func chartMessage(id string, index int, value float64, mode chart.UpdateMode) Message {
	return Message{Type: TypeChart, ID: id, Index: &index, Value: &value, Mode: string(mode)}
}
