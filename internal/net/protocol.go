package net

import (
	"fmt"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

// ClientMessage is one JSON frame sent by the page.
type ClientMessage struct {
	Type   string  `json:"type"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width,omitempty"`
	Name   string  `json:"name,omitempty"`
	Glyph  string  `json:"glyph,omitempty"`
	Format string  `json:"format,omitempty"`
}

// Event converts m to a pad event.
func (m ClientMessage) Event() (pad.Event, error) {
	at := state.Point{X: m.X, Y: m.Y}
	switch m.Type {
	case "down":
		return pad.PointerDown{At: at}, nil
	case "move":
		return pad.PointerMove{At: at}, nil
	case "up":
		return pad.PointerUp{At: at}, nil
	case "leave":
		return pad.PointerLeave{}, nil
	case "draw":
		return pad.SelectDraw{}, nil
	case "width":
		return pad.SelectWidth{Width: m.Width}, nil
	case "color":
		return pad.SelectColor{Name: m.Name}, nil
	case "sticker":
		return pad.SelectSticker{Glyph: m.Glyph}, nil
	case "custom":
		return pad.AddCustomSticker{Glyph: m.Glyph}, nil
	case "undo":
		return pad.Undo{}, nil
	case "redo":
		return pad.Redo{}, nil
	case "clear":
		return pad.Clear{}, nil
	case "export":
		f := pad.Format(m.Format)
		if f == "" {
			f = pad.FormatPNG
		}
		return pad.Export{Format: f}, nil
	}
	return nil, fmt.Errorf("net: unknown message type %q", m.Type)
}

// Op is one drawing operation for the page's 2D context.
type Op struct {
	Op     string       `json:"op"` // clear, polyline, text, circle
	Points [][2]float32 `json:"points,omitempty"`
	X      float32      `json:"x"`
	Y      float32      `json:"y"`
	R      float32      `json:"r,omitempty"`
	Width  float32      `json:"width,omitempty"`
	Color  string       `json:"color,omitempty"`
	Glyph  string       `json:"glyph,omitempty"`
	Size   float32      `json:"size,omitempty"`
	Alpha  float32      `json:"alpha,omitempty"`
}

// ToolsMessage mirrors pad.Tools for the page's buttons.
type ToolsMessage struct {
	Mode      string   `json:"mode"`
	Glyph     string   `json:"glyph,omitempty"`
	Thickness float32  `json:"thickness"`
	Color     string   `json:"color"`
	Stickers  []string `json:"stickers"`
	Palette   []string `json:"palette"`
	Thin      float32  `json:"thin"`
	Thick     float32  `json:"thick"`
	CanUndo   bool     `json:"canUndo"`
	CanRedo   bool     `json:"canRedo"`
}

// ServerMessage is one JSON frame sent to the page.
type ServerMessage struct {
	Type     string        `json:"type"` // frame, tools, download, error
	Target   string        `json:"target,omitempty"`
	Width    int           `json:"width,omitempty"`
	Height   int           `json:"height,omitempty"`
	Filename string        `json:"filename,omitempty"`
	Ops      []Op          `json:"ops,omitempty"`
	Tools    *ToolsMessage `json:"tools,omitempty"`
	Mime     string        `json:"mime,omitempty"`
	Data     []byte        `json:"data,omitempty"`
	Error    string        `json:"error,omitempty"`
}
