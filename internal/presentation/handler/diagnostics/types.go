package diagnostics

// rootResponse is the static liveness payload
type rootResponse struct {
	Message string `json:"message" example:"Long Distance Companion Backend"`
	OK      bool   `json:"ok" example:"true"`
}

// testResponse describes the store connection, field by field, in
// human-readable status strings
type testResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
