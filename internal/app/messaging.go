package app

import (
	"github.com/avoran/meethub/internal/domain"
	"github.com/avoran/meethub/internal/protocol"
)

// handleChat relays a chat message to every member of the room, the
// sender included. No registry mutation.
func (d *Dispatcher) handleChat(ev protocol.SendMessage) []send {
	frame := protocol.Chat(protocol.MessagePayload{
		RoomID:  ev.RoomID,
		UserID:  ev.UserID,
		Message: ev.Message,
	})
	return d.broadcast(ev.RoomID, frame)
}

// Device and state were validated at decode time; a handler only ever
// sees well-formed values.
func (d *Dispatcher) handleToggleDevice(ev protocol.ToggleDevice) []send {
	frame := protocol.DeviceToggled(protocol.DeviceToggledPayload{
		RoomID: ev.RoomID,
		UserID: ev.UserID,
		Device: ev.Device,
		State:  ev.State,
	})
	return d.broadcast(ev.RoomID, frame)
}

func (d *Dispatcher) handleRaiseHand(ev protocol.RaiseHand) []send {
	frame := protocol.HandRaised(protocol.HandRaisedPayload{
		RoomID: ev.RoomID,
		UserID: ev.UserID,
		Raised: ev.Raised,
	})
	return d.broadcast(ev.RoomID, frame)
}

func (d *Dispatcher) broadcast(room domain.RoomID, frame []byte) []send {
	var out []send
	for _, m := range d.reg.MembersOf(room) {
		out = append(out, send{m.Conn, frame})
	}
	return out
}
