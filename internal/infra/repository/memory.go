package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// MemoryStore implements the booking, schedule and notification repositories
// in process. A transaction holds the store lock for its whole duration and
// restores a snapshot when fn fails.
type MemoryStore struct {
	mu   *sync.Mutex
	data *memoryData
	inTx bool
}

type memoryData struct {
	users         map[uint]models.User
	doctors       map[uint]models.Doctor
	patients      map[uint]models.Patient
	bookings      map[uint]models.Booking
	schedules     map[uint]models.Schedule
	notifications map[uint]models.Notification

	nextUser         uint
	nextBooking      uint
	nextSchedule     uint
	nextNotification uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.Mutex{},
		data: &memoryData{
			users:         map[uint]models.User{},
			doctors:       map[uint]models.Doctor{},
			patients:      map[uint]models.Patient{},
			bookings:      map[uint]models.Booking{},
			schedules:     map[uint]models.Schedule{},
			notifications: map[uint]models.Notification{},
		},
	}
}

func (d *memoryData) clone() *memoryData {
	c := *d
	c.users = cloneMap(d.users)
	c.doctors = cloneMap(d.doctors)
	c.patients = cloneMap(d.patients)
	c.bookings = cloneMap(d.bookings)
	c.schedules = cloneMap(d.schedules)
	c.notifications = cloneMap(d.notifications)
	return &c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.inTx {
		return func() {}, nil
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx booking.Repository) error) error {
	if s.inTx {
		return fn(s)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	snapshot := s.data.clone()
	tx := &MemoryStore{mu: s.mu, data: s.data, inTx: true}

	if err := fn(tx); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

// PutDoctor stores the user and its doctor profile, assigning a user id when
// zero.
func (s *MemoryStore) PutDoctor(u models.User, d models.Doctor) models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	u = s.putUser(u)
	d.UserID = u.ID
	d.User = u
	s.data.doctors[u.ID] = d
	return d
}

func (s *MemoryStore) PutPatient(u models.User, p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	u = s.putUser(u)
	p.UserID = u.ID
	p.User = u
	s.data.patients[u.ID] = p
	return p
}

func (s *MemoryStore) putUser(u models.User) models.User {
	if u.ID == 0 {
		s.data.nextUser++
		u.ID = s.data.nextUser
	} else if u.ID > s.data.nextUser {
		s.data.nextUser = u.ID
	}
	s.data.users[u.ID] = u
	return u
}

func (s *MemoryStore) GetDoctor(ctx context.Context, doctorID uint) (*models.Doctor, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	d, ok := s.data.doctors[doctorID]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	d.User = s.data.users[doctorID]
	return &d, nil
}

func (s *MemoryStore) GetPatient(ctx context.Context, patientID uint) (*models.Patient, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := s.data.patients[patientID]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	p.User = s.data.users[patientID]
	return &p, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (s *MemoryStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.doctors[b.DoctorID]; !ok {
		return booking.ErrRecordNotFound
	}
	if _, ok := s.data.patients[b.PatientID]; !ok {
		return booking.ErrRecordNotFound
	}
	if s.inspectionTaken(b) {
		return booking.ErrConflict
	}

	s.data.nextBooking++
	b.ID = s.data.nextBooking
	s.data.bookings[b.ID] = stripBooking(*b)
	return nil
}

func (s *MemoryStore) UpdateBooking(ctx context.Context, b *models.Booking) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.bookings[b.ID]; !ok {
		return booking.ErrRecordNotFound
	}
	if s.inspectionTaken(b) {
		return booking.ErrConflict
	}

	s.data.bookings[b.ID] = stripBooking(*b)
	return nil
}

func (s *MemoryStore) DeleteBooking(ctx context.Context, bookingID uint) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.bookings[bookingID]; !ok {
		return booking.ErrRecordNotFound
	}
	delete(s.data.bookings, bookingID)
	return nil
}

// inspectionTaken emulates the (doctor_id, date, inspection_number) unique index.
func (s *MemoryStore) inspectionTaken(b *models.Booking) bool {
	if b.InspectionNumber == nil {
		return false
	}
	for id, other := range s.data.bookings {
		if id == b.ID || other.InspectionNumber == nil {
			continue
		}
		if other.DoctorID == b.DoctorID && other.Date == b.Date && *other.InspectionNumber == *b.InspectionNumber {
			return true
		}
	}
	return false
}

func (s *MemoryStore) GetBookingForDoctor(ctx context.Context, bookingID, doctorID uint) (*models.Booking, error) {
	return s.findBooking(ctx, func(b models.Booking) bool {
		return b.ID == bookingID && b.DoctorID == doctorID
	})
}

func (s *MemoryStore) GetBookingForPatient(ctx context.Context, bookingID, patientID uint) (*models.Booking, error) {
	return s.findBooking(ctx, func(b models.Booking) bool {
		return b.ID == bookingID && b.PatientID == patientID
	})
}

func (s *MemoryStore) FindByInspectionNumber(ctx context.Context, doctorID uint, date string, number int) (*models.Booking, error) {
	return s.findBooking(ctx, func(b models.Booking) bool {
		return b.DoctorID == doctorID && b.Date == date && b.InspectionNumber != nil && *b.InspectionNumber == number
	})
}

func (s *MemoryStore) findBooking(ctx context.Context, match func(models.Booking) bool) (*models.Booking, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, b := range s.data.bookings {
		if match(b) {
			out := b
			return &out, nil
		}
	}
	return nil, booking.ErrRecordNotFound
}

func (s *MemoryStore) MaxInspectionNumber(ctx context.Context, doctorID uint, date string) (int, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	highest := 0
	for _, b := range s.data.bookings {
		if b.DoctorID == doctorID && b.Date == date && b.InspectionNumber != nil && *b.InspectionNumber > highest {
			highest = *b.InspectionNumber
		}
	}
	return highest, nil
}

func (s *MemoryStore) ListBookings(ctx context.Context, q booking.Query) ([]models.Booking, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := []models.Booking{}
	for _, b := range s.data.bookings {
		if q.DoctorID != nil && b.DoctorID != *q.DoctorID {
			continue
		}
		if q.PatientID != nil && b.PatientID != *q.PatientID {
			continue
		}
		if q.Status != nil && b.Status != string(*q.Status) {
			continue
		}
		if q.Date != "" && b.Date != q.Date {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time > out[j].Time
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) CountByStatus(ctx context.Context, doctorID uint) (map[booking.Status]int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make(map[booking.Status]int64, len(booking.AllStatuses))
	for _, st := range booking.AllStatuses {
		out[st] = 0
	}
	for _, b := range s.data.bookings {
		if b.DoctorID == doctorID {
			out[booking.Status(b.Status)]++
		}
	}
	return out, nil
}

func stripBooking(b models.Booking) models.Booking {
	b.Doctor = models.Doctor{}
	b.Patient = models.Patient{}
	return b
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (s *MemoryStore) ListSchedules(ctx context.Context, doctorID uint) ([]models.Schedule, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := []models.Schedule{}
	for _, sc := range s.data.schedules {
		if sc.DoctorID == doctorID {
			out = append(out, sc)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) GetSchedule(ctx context.Context, id uint) (*models.Schedule, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sc, ok := s.data.schedules[id]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	return &sc, nil
}

func (s *MemoryStore) CreateSchedule(ctx context.Context, sc *models.Schedule) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.doctors[sc.DoctorID]; !ok {
		return booking.ErrRecordNotFound
	}

	s.data.nextSchedule++
	sc.ID = s.data.nextSchedule
	stored := *sc
	stored.Doctor = models.Doctor{}
	s.data.schedules[sc.ID] = stored
	return nil
}

func (s *MemoryStore) UpdateSchedule(ctx context.Context, sc *models.Schedule) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.schedules[sc.ID]; !ok {
		return booking.ErrRecordNotFound
	}
	stored := *sc
	stored.Doctor = models.Doctor{}
	s.data.schedules[sc.ID] = stored
	return nil
}

func (s *MemoryStore) DeleteSchedule(ctx context.Context, id uint) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.schedules[id]; !ok {
		return booking.ErrRecordNotFound
	}
	delete(s.data.schedules, id)
	return nil
}

// --------------------------------------------------
// Notification
// --------------------------------------------------

func (s *MemoryStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.users[n.ReceiverID]; !ok {
		return booking.ErrRecordNotFound
	}

	s.data.nextNotification++
	n.ID = s.data.nextNotification
	stored := *n
	stored.Receiver = models.User{}
	s.data.notifications[n.ID] = stored
	return nil
}

func (s *MemoryStore) GetNotification(ctx context.Context, id uint) (*models.Notification, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	n, ok := s.data.notifications[id]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	return &n, nil
}

func (s *MemoryStore) ListNotifications(ctx context.Context, receiverID uint, unreadOnly bool) ([]models.Notification, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := []models.Notification{}
	for _, n := range s.data.notifications {
		if n.ReceiverID != receiverID || (unreadOnly && n.IsRead) {
			continue
		}
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) UpdateNotification(ctx context.Context, n *models.Notification) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.notifications[n.ID]; !ok {
		return booking.ErrRecordNotFound
	}
	stored := *n
	stored.Receiver = models.User{}
	s.data.notifications[n.ID] = stored
	return nil
}

func (s *MemoryStore) DeleteNotification(ctx context.Context, id uint) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := s.data.notifications[id]; !ok {
		return booking.ErrRecordNotFound
	}
	delete(s.data.notifications, id)
	return nil
}

// Compile-time checks
var (
	_ booking.Repository      = (*MemoryStore)(nil)
	_ schedule.Repository     = (*MemoryStore)(nil)
	_ notification.Repository = (*MemoryStore)(nil)
)
