package live

// Message types on the live socket.
const (
	TypeRender  = "render"
	TypeRefetch = "refetch"
)

// RenderMessage is pushed to the client on every state change.
type RenderMessage struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	State   string `json:"state"`
	HTML    string `json:"html"`
}

// ClientMessage is what the page sends back. Only "refetch" is understood.
type ClientMessage struct {
	Type string `json:"type"`
}
