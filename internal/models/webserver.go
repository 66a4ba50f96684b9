package models

type Error struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Context string `json:"context,omitempty"`
}

// StatusPayload is the response body of the status endpoint.
type StatusPayload struct {
	Code         int    `json:"code"`
	Guilds       int    `json:"guilds"`
	TrackedUsers int    `json:"tracked_users"`
	Uptime       string `json:"uptime"`
}
