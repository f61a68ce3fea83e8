package pings

// createPingRequest represents the request to send a presence ping
type createPingRequest struct {
	Note   *string `json:"note" maxLength:"140"` // Optional short note
	Author *string `json:"author" example:"🌙"`  // Optional sender name or emoji
}
