// Package app holds the in-memory signaling core: the participant
// registry and the dispatcher that interprets inbound events, mutates the
// registry and fans messages out to room members.
package app

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/avoran/meethub/internal/core"
	"github.com/avoran/meethub/internal/protocol"
)

// send is one outbound delivery instruction.
type send struct {
	conn  core.SignalConnection
	frame core.Frame
}

// Dispatcher processes one event at a time: the mutex covers the whole
// read-modify-compute sequence of a single event, so two connections can
// never interleave registry mutations. Delivery happens after the lock is
// released and is best-effort; a slow or dead recipient never stalls the
// next event.
type Dispatcher struct {
	mu  sync.Mutex
	reg *Registry
}

func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// HandleOpen greets a newly opened connection. No registry mutation.
func (d *Dispatcher) HandleOpen(id core.ConnID, conn core.SignalConnection) {
	log.Info().Str("module", "app.dispatcher").Str("conn", string(id)).Msg("connection open")
	deliver([]send{{conn, protocol.Connected()}})
}

// HandleFrame interprets one raw inbound frame from the transport.
func (d *Dispatcher) HandleFrame(id core.ConnID, conn core.SignalConnection, data core.Frame) {
	ev, err := protocol.Decode(data)
	if err != nil {
		var perr *protocol.ParseError
		if errors.As(err, &perr) {
			log.Warn().Str("module", "app.dispatcher").Str("conn", string(id)).Str("reason", perr.Reason).Msg("rejected frame")
			deliver([]send{{conn, protocol.Error(perr.Reason)}})
			return
		}
		log.Error().Err(err).Str("module", "app.dispatcher").Msg("decode failed")
		return
	}
	if ev == nil {
		log.Debug().Str("module", "app.dispatcher").Str("conn", string(id)).Msg("ignored unknown event type")
		return
	}

	d.mu.Lock()
	sends := d.dispatch(id, conn, ev)
	d.mu.Unlock()
	deliver(sends)
}

// HandleClose purges the participant bound to a closed connection, same
// registry effect as an explicit DISCONNECT. No broadcast is emitted.
func (d *Dispatcher) HandleClose(id core.ConnID) {
	d.mu.Lock()
	d.reg.RemoveByConn(id)
	d.mu.Unlock()
	log.Info().Str("module", "app.dispatcher").Str("conn", string(id)).Msg("connection closed")
}

func (d *Dispatcher) dispatch(id core.ConnID, conn core.SignalConnection, ev protocol.Event) []send {
	switch ev := ev.(type) {
	case protocol.JoinMeeting:
		return d.handleJoin(id, conn, ev)
	case protocol.LeaveMeeting:
		return d.handleLeave(conn, ev)
	case protocol.Disconnect:
		return d.handleDisconnect(ev)
	case protocol.SendMessage:
		return d.handleChat(ev)
	case protocol.ToggleDevice:
		return d.handleToggleDevice(ev)
	case protocol.RaiseHand:
		return d.handleRaiseHand(ev)
	}
	return nil
}

// RegistrySize reports the current participant count.
func (d *Dispatcher) RegistrySize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reg.Len()
}

func deliver(sends []send) {
	for _, s := range sends {
		if err := s.conn.TrySend(s.frame); err != nil {
			log.Debug().Err(err).Str("module", "app.dispatcher").Msg("dropped outbound frame")
		}
	}
}
