// Package domain contains entity without logic, just meta-data
package domain

type (
	UserID string
	RoomID string
)

// Participant binds a stable user identity to the set of rooms it
// currently belongs to. Transport state lives in the registry, not here.
type Participant struct {
	UserID UserID
	Name   string
	Rooms  []RoomID
}

// NewParticipant is a tiny helper to avoid ad-hoc struct literals in handlers.
func NewParticipant(userID UserID, name string) *Participant {
	return &Participant{UserID: userID, Name: name}
}

func (p *Participant) InRoom(room RoomID) bool {
	for _, r := range p.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// AddRoom is idempotent: joining a room twice keeps a single entry.
func (p *Participant) AddRoom(room RoomID) {
	if p.InRoom(room) {
		return
	}
	p.Rooms = append(p.Rooms, room)
}

// RemoveRoom is idempotent; leaving a room the participant is not in is a no-op.
func (p *Participant) RemoveRoom(room RoomID) {
	for i, r := range p.Rooms {
		if r == room {
			p.Rooms = append(p.Rooms[:i], p.Rooms[i+1:]...)
			return
		}
	}
}
