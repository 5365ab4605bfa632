// Package protocol defines the wire shapes of the signaling protocol:
// inbound events decoded into typed payloads before dispatch, and the
// outbound messages the relay emits.
package protocol

import (
	"encoding/json"

	"github.com/avoran/meethub/internal/domain"
)

// Inbound event types.
const (
	TypeJoinMeeting  = "JOIN_MEETING"
	TypeLeaveMeeting = "LEAVE_MEETING"
	TypeSendMessage  = "SEND_MESSAGE"
	TypeDisconnect   = "DISCONNECT"
	TypeToggleDevice = "TOGGLE_DEVICE"
	TypeRaiseHand    = "RAISE_HAND"
)

// ParseError carries the human-readable message returned to the sender
// in an "error" reply. It never aborts anything beyond the current frame.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return e.Reason }

const (
	reasonBadJSON       = "Invalid JSON format"
	reasonBadDevice     = "Invalid device or state"
	reasonBadRaisedFlag = "Invalid raised flag"
)

// Event is one validated inbound event. Concrete types below.
type Event interface{ isEvent() }

type JoinMeeting struct {
	RoomID domain.RoomID `json:"roomId"`
	UserID domain.UserID `json:"userId"`
	Name   string        `json:"name"`
}

type LeaveMeeting struct {
	RoomID domain.RoomID `json:"roomId"`
	UserID domain.UserID `json:"userId"`
}

type SendMessage struct {
	RoomID  domain.RoomID `json:"roomId"`
	UserID  domain.UserID `json:"userId"`
	Message string        `json:"message"`
}

type Disconnect struct {
	UserID domain.UserID `json:"userId"`
}

type ToggleDevice struct {
	RoomID domain.RoomID      `json:"roomId"`
	UserID domain.UserID      `json:"userId"`
	Device domain.Device      `json:"device"`
	State  domain.DeviceState `json:"state"`
}

type RaiseHand struct {
	RoomID domain.RoomID `json:"roomId"`
	UserID domain.UserID `json:"userId"`
	Raised bool          `json:"raised"`
}

func (JoinMeeting) isEvent()  {}
func (LeaveMeeting) isEvent() {}
func (SendMessage) isEvent()  {}
func (Disconnect) isEvent()   {}
func (ToggleDevice) isEvent() {}
func (RaiseHand) isEvent()    {}

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Decode parses one raw frame into a typed event. An unrecognized type
// yields (nil, nil) so the caller can ignore it without treating it as
// a failure. A *ParseError means the sender gets an "error" reply.
func Decode(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &ParseError{Reason: reasonBadJSON}
	}

	switch env.Type {
	case TypeJoinMeeting:
		var ev JoinMeeting
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			return nil, &ParseError{Reason: reasonBadJSON}
		}
		return ev, nil
	case TypeLeaveMeeting:
		var ev LeaveMeeting
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			return nil, &ParseError{Reason: reasonBadJSON}
		}
		return ev, nil
	case TypeSendMessage:
		var ev SendMessage
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			return nil, &ParseError{Reason: reasonBadJSON}
		}
		return ev, nil
	case TypeDisconnect:
		var ev Disconnect
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			return nil, &ParseError{Reason: reasonBadJSON}
		}
		return ev, nil
	case TypeToggleDevice:
		return decodeToggleDevice(env.Payload)
	case TypeRaiseHand:
		return decodeRaiseHand(env.Payload)
	default:
		// Forward compatibility: unknown types are not an error.
		return nil, nil
	}
}

func decodeToggleDevice(payload json.RawMessage) (Event, error) {
	var ev ToggleDevice
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, &ParseError{Reason: reasonBadJSON}
	}
	if !domain.ValidDevice(ev.Device) || !domain.ValidDeviceState(ev.State) {
		return nil, &ParseError{Reason: reasonBadDevice}
	}
	return ev, nil
}

func decodeRaiseHand(payload json.RawMessage) (Event, error) {
	// raised must be a real JSON boolean, not merely present.
	var probe struct {
		RoomID domain.RoomID   `json:"roomId"`
		UserID domain.UserID   `json:"userId"`
		Raised json.RawMessage `json:"raised"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, &ParseError{Reason: reasonBadJSON}
	}
	var raised bool
	if err := json.Unmarshal(probe.Raised, &raised); err != nil {
		return nil, &ParseError{Reason: reasonBadRaisedFlag}
	}
	return RaiseHand{RoomID: probe.RoomID, UserID: probe.UserID, Raised: raised}, nil
}
