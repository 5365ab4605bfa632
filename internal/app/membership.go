package app

import (
	"github.com/rs/zerolog/log"

	"github.com/avoran/meethub/internal/core"
	"github.com/avoran/meethub/internal/domain"
	"github.com/avoran/meethub/internal/protocol"
)

func (d *Dispatcher) handleJoin(id core.ConnID, conn core.SignalConnection, ev protocol.JoinMeeting) []send {
	member := d.reg.FindByUserID(ev.UserID)
	if member == nil {
		member = &Member{
			ConnID:      id,
			Conn:        conn,
			Participant: domain.NewParticipant(ev.UserID, ev.Name),
		}
		d.reg.Add(member)
	}
	d.reg.AddRoom(member, ev.RoomID)
	log.Info().Str("module", "app.dispatcher").Str("user", string(ev.UserID)).Str("room", string(ev.RoomID)).Msg("join")

	frame := protocol.UserJoined(protocol.UserJoinedPayload{
		RoomID: ev.RoomID,
		UserID: ev.UserID,
		Name:   ev.Name,
	})
	var out []send
	for _, m := range d.reg.MembersOf(ev.RoomID) {
		if m.Conn == conn {
			continue
		}
		out = append(out, send{m.Conn, frame})
	}
	out = append(out, send{conn, protocol.JoinSuccess(ev.RoomID)})
	return out
}

func (d *Dispatcher) handleLeave(conn core.SignalConnection, ev protocol.LeaveMeeting) []send {
	member := d.reg.FindByUserID(ev.UserID)
	if member == nil {
		return nil
	}
	log.Info().Str("module", "app.dispatcher").Str("user", string(ev.UserID)).Str("room", string(ev.RoomID)).Msg("leave")

	// Recipients are captured before the removal so the last member out
	// still notifies the rest; the sender's own connection is excluded.
	frame := protocol.UserLeft(protocol.UserLeftPayload{RoomID: ev.RoomID, UserID: ev.UserID})
	var out []send
	for _, m := range d.reg.MembersOf(ev.RoomID) {
		if m.Conn == conn {
			continue
		}
		out = append(out, send{m.Conn, frame})
	}
	d.reg.RemoveRoom(member, ev.RoomID)
	return out
}

func (d *Dispatcher) handleDisconnect(ev protocol.Disconnect) []send {
	log.Info().Str("module", "app.dispatcher").Str("user", string(ev.UserID)).Msg("disconnect")
	d.reg.RemoveByUserID(ev.UserID)
	return nil
}
