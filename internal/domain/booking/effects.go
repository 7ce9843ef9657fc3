package booking

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
)

// Effect is a notification a transition asks to be recorded.
type Effect struct {
	ReceiverID uint
	Message    string
	Type       notification.Type
}

func notifyDoctor(b bookingParties, message string) Effect {
	return Effect{ReceiverID: b.doctorID, Message: message, Type: notification.TypeAlert}
}

func notifyPatient(b bookingParties, message string, t notification.Type) Effect {
	return Effect{ReceiverID: b.patientID, Message: message, Type: t}
}

type bookingParties struct {
	doctorID  uint
	patientID uint
}

func displayName(name string, id uint) string {
	if name == "" {
		return fmt.Sprintf("#%d", id)
	}
	return name
}
