package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionResize Action = "resize"
	ActionPing   Action = "ping"
)

// ResizeRequest is one viewport width signal. Widths are logical pixels;
// the observer only cares which side of the compact threshold they land.
type ResizeRequest struct {
	Action Action `json:"action"`
	Width  int    `json:"width"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventLayout Event = "layout"
	EventError  Event = "error"
	EventPong   Event = "pong"
)

// LayoutResponse echoes the resulting layout mode after each signal.
type LayoutResponse struct {
	Event   Event `json:"event"`
	Compact bool  `json:"compact"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
