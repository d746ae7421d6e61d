package api

// Error is the structured body returned for 4xx responses.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
