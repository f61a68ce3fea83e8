package rooms

// createRoomRequest represents the request to create (or re-join) a room
type createRoomRequest struct {
	Code  string  `json:"code" example:"sunflower"` // Shared room code between partners
	Title *string `json:"title" example:"J & M"`    // Optional room title or couple name
}
