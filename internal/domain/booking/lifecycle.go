package booking

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Every action below mutates the booking in memory only and returns the
// effects to record. Persistence is the caller's job.

// New builds a pending booking, snapshotting the doctor's fee.
func New(doctor *models.Doctor, patientID uint, patientName string, slot Slot) (*models.Booking, []Effect) {
	b := &models.Booking{
		DoctorID:  doctor.UserID,
		PatientID: patientID,
		Date:      slot.Date,
		Day:       int(slot.Day),
		Time:      slot.Time,
		Amount:    doctor.ConsultationFee,
		Status:    string(InitialStatus()),
	}

	msg := fmt.Sprintf("You have a new booking from patient %s.", displayName(patientName, patientID))
	return b, []Effect{notifyDoctor(parties(b), msg)}
}

// Confirm assigns the inspection number the caller computed for (doctor, date).
func Confirm(b *models.Booking, inspectionNumber int, doctorName string) ([]Effect, error) {
	if err := Transition(Status(b.Status), StatusConfirmed); err != nil {
		return nil, err
	}
	if inspectionNumber < 1 {
		return nil, fmt.Errorf("invalid inspection number %d", inspectionNumber)
	}

	n := inspectionNumber
	b.Status = string(StatusConfirmed)
	b.InspectionNumber = &n

	msg := fmt.Sprintf("Your booking with doctor %s has been confirmed.", displayName(doctorName, b.DoctorID))
	return []Effect{notifyPatient(parties(b), msg, notification.TypeConfirmation)}, nil
}

// Cancel keeps any inspection number already assigned.
func Cancel(b *models.Booking, doctorName string) ([]Effect, error) {
	if err := Transition(Status(b.Status), StatusCancelled); err != nil {
		return nil, err
	}

	b.Status = string(StatusCancelled)

	msg := fmt.Sprintf("Your booking with doctor %s has been cancelled.", displayName(doctorName, b.DoctorID))
	return []Effect{notifyPatient(parties(b), msg, notification.TypeWarning)}, nil
}

func Complete(b *models.Booking, diagnosis, prescription, doctorName string) ([]Effect, error) {
	if err := Transition(Status(b.Status), StatusCompleted); err != nil {
		return nil, err
	}
	b.Status = string(StatusCompleted)
	b.Diagnosis = &diagnosis
	b.Prescription = &prescription

	msg := fmt.Sprintf("Your booking with doctor %s has been completed.", displayName(doctorName, b.DoctorID))
	return []Effect{notifyPatient(parties(b), msg, notification.TypeAlert)}, nil
}

// Reschedule is the patient-side update of date, day and time.
func Reschedule(b *models.Booking, slot Slot, patientName string) ([]Effect, error) {
	if err := CanModify(Status(b.Status)); err != nil {
		return nil, err
	}

	b.Date = slot.Date
	b.Day = int(slot.Day)
	b.Time = slot.Time

	msg := fmt.Sprintf("Patient %s has updated their booking.", displayName(patientName, b.PatientID))
	return []Effect{notifyDoctor(parties(b), msg)}, nil
}

// Withdraw checks a patient may delete the booking and returns the effect
// the deletion produces.
func Withdraw(b *models.Booking, patientName string) ([]Effect, error) {
	if err := CanModify(Status(b.Status)); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Patient %s has cancelled their booking.", displayName(patientName, b.PatientID))
	return []Effect{notifyDoctor(parties(b), msg)}, nil
}

func parties(b *models.Booking) bookingParties {
	return bookingParties{doctorID: b.DoctorID, patientID: b.PatientID}
}
