package entity

import "encoding/json"

// SessionPickup is the payload parked behind a one-time session code.
type SessionPickup struct {
	Token    string          `json:"token"`
	UserData json.RawMessage `json:"user_data"`
}
