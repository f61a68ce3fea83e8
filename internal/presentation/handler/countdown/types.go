package countdown

// setCountdownRequest represents the request to set the room's target date
type setCountdownRequest struct {
	TargetISO string `json:"target_iso" example:"2030-01-01T00:00:00Z"` // ISO string for target date/time
}

// emptyCountdownResponse is returned when the room has no countdown yet
type emptyCountdownResponse struct {
	RoomCode  string  `json:"room_code"`
	TargetISO *string `json:"target_iso"` // always null here
}
