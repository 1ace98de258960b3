package events

import "time"

// Event es el registro que guarda el store por cada Key.
// Since marca la creación o el último reset, siempre en UTC.
type Event struct {
	Description string
	Since       time.Time
}

// Key identifica un evento dentro de su comunidad.
// Es la representación principal; Flat() solo existe para backends de keys planas.
type Key struct {
	CommunityID string
	Name        string
}

func NewKey(communityID, name string) Key {
	return Key{CommunityID: communityID, Name: name}
}
