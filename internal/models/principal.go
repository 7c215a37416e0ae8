package models

// Principal is the authenticated (or guest) identity that scopes all
// persisted collections. Switching principals swaps the entire visible
// data set; collections are never merged across identities.
type Principal struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// GuestID is the principal used when no login has been performed.
const GuestID = "guest"

// Guest returns the built-in no-login principal.
func Guest() Principal {
	return Principal{ID: GuestID, DisplayName: "Guest"}
}
