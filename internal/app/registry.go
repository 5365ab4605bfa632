package app

import (
	"github.com/rs/zerolog/log"

	"github.com/avoran/meethub/internal/core"
	"github.com/avoran/meethub/internal/domain"
)

// Member binds a participant to its transport endpoint. The connection is
// the one the participant first joined on; later joins for the same user
// keep the original binding.
type Member struct {
	ConnID      core.ConnID
	Conn        core.SignalConnection
	Participant *domain.Participant
}

// Registry is the process-wide table of connected participants. It keeps
// insertion order so broadcast fan-out is deterministic. The Registry does
// no locking of its own: the Dispatcher serializes every event touching it.
type Registry struct {
	members []*Member
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) FindByUserID(id domain.UserID) *Member {
	for _, m := range r.members {
		if m.Participant.UserID == id {
			return m
		}
	}
	return nil
}

func (r *Registry) FindByConn(id core.ConnID) *Member {
	for _, m := range r.members {
		if m.ConnID == id {
			return m
		}
	}
	return nil
}

// Add appends a new member. Caller ensures no member with the same
// userId exists.
func (r *Registry) Add(m *Member) {
	r.members = append(r.members, m)
	log.Info().Str("module", "app.registry").Str("user", string(m.Participant.UserID)).Str("conn", string(m.ConnID)).Msg("participant added")
}

func (r *Registry) AddRoom(m *Member, room domain.RoomID) {
	m.Participant.AddRoom(room)
}

// RemoveRoom drops the membership and, when the participant's last room is
// gone, the participant itself. Empty-room participants are not retained.
func (r *Registry) RemoveRoom(m *Member, room domain.RoomID) {
	m.Participant.RemoveRoom(room)
	if len(m.Participant.Rooms) == 0 {
		r.remove(m)
	}
}

func (r *Registry) RemoveByUserID(id domain.UserID) {
	if m := r.FindByUserID(id); m != nil {
		r.remove(m)
	}
}

func (r *Registry) RemoveByConn(id core.ConnID) {
	if m := r.FindByConn(id); m != nil {
		r.remove(m)
	}
}

// MembersOf returns every member of the room in registry insertion order.
func (r *Registry) MembersOf(room domain.RoomID) []*Member {
	out := make([]*Member, 0, len(r.members))
	for _, m := range r.members {
		if m.Participant.InRoom(room) {
			out = append(out, m)
		}
	}
	return out
}

func (r *Registry) Len() int { return len(r.members) }

func (r *Registry) remove(m *Member) {
	for i, cur := range r.members {
		if cur == m {
			r.members = append(r.members[:i], r.members[i+1:]...)
			log.Info().Str("module", "app.registry").Str("user", string(m.Participant.UserID)).Msg("participant removed")
			return
		}
	}
}
