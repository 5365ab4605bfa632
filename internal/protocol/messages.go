package protocol

import (
	"encoding/json"

	"github.com/avoran/meethub/internal/domain"
)

// Outbound message types.
const (
	TypeConnected     = "CONNECTED"
	TypeJoinSuccess   = "JOIN_SUCCESS"
	TypeError         = "error"
	TypeUserJoined    = "USER_JOINED"
	TypeUserLeft      = "USER_LEFT"
	TypeMessage       = "MESSAGE"
	TypeDeviceToggled = "DEVICE_TOGGLED"
	TypeHandRaised    = "HAND_RAISED"
)

// Message is the nested outbound envelope. CONNECTED, JOIN_SUCCESS and
// error place their fields beside type instead; see the flat shapes below.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type connectedMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type joinSuccessMsg struct {
	Type   string        `json:"type"`
	RoomID domain.RoomID `json:"roomId"`
}

type errorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type UserJoinedPayload struct {
	RoomID domain.RoomID `json:"roomId"`
	UserID domain.UserID `json:"userId"`
	Name   string        `json:"name"`
}

type UserLeftPayload struct {
	RoomID domain.RoomID `json:"roomId"`
	UserID domain.UserID `json:"userId"`
}

type MessagePayload struct {
	RoomID  domain.RoomID `json:"roomId"`
	UserID  domain.UserID `json:"userId"`
	Message string        `json:"message"`
}

type DeviceToggledPayload struct {
	RoomID domain.RoomID      `json:"roomId"`
	UserID domain.UserID      `json:"userId"`
	Device domain.Device      `json:"device"`
	State  domain.DeviceState `json:"state"`
}

type HandRaisedPayload struct {
	RoomID domain.RoomID `json:"roomId"`
	UserID domain.UserID `json:"userId"`
	Raised bool          `json:"raised"`
}

// Marshal helpers. Outbound shapes are known types, so the marshal
// cannot realistically fail; errors are swallowed to keep call sites flat.

func Connected() []byte {
	b, _ := json.Marshal(connectedMsg{Type: TypeConnected, Message: "WebSocket connected"})
	return b
}

func JoinSuccess(room domain.RoomID) []byte {
	b, _ := json.Marshal(joinSuccessMsg{Type: TypeJoinSuccess, RoomID: room})
	return b
}

func Error(message string) []byte {
	b, _ := json.Marshal(errorMsg{Type: TypeError, Message: message})
	return b
}

func UserJoined(p UserJoinedPayload) []byte       { return marshal(TypeUserJoined, p) }
func UserLeft(p UserLeftPayload) []byte           { return marshal(TypeUserLeft, p) }
func Chat(p MessagePayload) []byte                { return marshal(TypeMessage, p) }
func DeviceToggled(p DeviceToggledPayload) []byte { return marshal(TypeDeviceToggled, p) }
func HandRaised(p HandRaisedPayload) []byte       { return marshal(TypeHandRaised, p) }

func marshal(typ string, payload any) []byte {
	b, _ := json.Marshal(Message{Type: typ, Payload: payload})
	return b
}
