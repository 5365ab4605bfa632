package domain

type Device string

const (
	DeviceMicrophone Device = "microphone"
	DeviceCamera     Device = "camera"
)

type DeviceState string

const (
	StateOn     DeviceState = "on"
	StateOff    DeviceState = "off"
	StateRaised DeviceState = "raised"
)

func ValidDevice(d Device) bool {
	switch d {
	case DeviceMicrophone, DeviceCamera:
		return true
	}
	return false
}

func ValidDeviceState(s DeviceState) bool {
	switch s {
	case StateOn, StateOff, StateRaised:
		return true
	}
	return false
}
