package models

// MessageResponse is the JSON body used for errors and for operations that
// have nothing else to return (logout, delete).
type MessageResponse struct {
	Message string `json:"message"`
}
