package models

// WebSocketClient is an authenticated websocket peer
type WebSocketClient struct {
	UserID string
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
