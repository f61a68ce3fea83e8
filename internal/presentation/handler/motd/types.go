package motd

// createMotdRequest represents the request to leave a message of the day
type createMotdRequest struct {
	Text   string  `json:"text" minLength:"1" maxLength:"500"` // Message body
	Author *string `json:"author" example:"🌻"`                // Optional sender name or emoji
}
