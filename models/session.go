package models

import (
	"fmt"
	"time"
)

// SessionStatus is the lifecycle state of a therapy session.
type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionApproved  SessionStatus = "approved"
	SessionDeclined  SessionStatus = "declined"
	SessionCompleted SessionStatus = "completed"
)

// ParseSessionStatus validates an incoming status string.
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch SessionStatus(s) {
	case SessionPending, SessionApproved, SessionDeclined, SessionCompleted:
		return SessionStatus(s), nil
	}
	return "", fmt.Errorf("unknown session status %q", s)
}

// SessionType distinguishes online (video, paid through the gateway) sessions
// from offline (in-person) ones. Immutable after creation.
type SessionType string

const (
	SessionOnline  SessionType = "online"
	SessionOffline SessionType = "offline"
)

func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case SessionOnline, SessionOffline:
		return SessionType(s), nil
	}
	return "", fmt.Errorf("unknown session type %q", s)
}

// PaymentStatus tracks gateway payment for online sessions. Offline sessions
// keep the zero value pending but are treated as payment-satisfied everywhere.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Session is a requested or scheduled consultation between an attendee and a
// mental-health professional.
type Session struct {
	ID              string        `bson:"id" json:"id"`
	AttendeeRef     UserRef       `bson:"attendeeRef" json:"attendeeRef"`
	ProfessionalRef UserRef       `bson:"professionalRef" json:"professionalRef"`
	SessionType     SessionType   `bson:"sessionType" json:"sessionType"`
	SessionStatus   SessionStatus `bson:"sessionStatus" json:"sessionStatus"`
	// SessionDate is the request submission time until the professional
	// approves and supplies the real scheduled time.
	SessionDate     time.Time     `bson:"sessionDate" json:"sessionDate"`
	PaymentStatus   PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	Recommendations string        `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// PaymentSatisfied reports whether the payment gate is cleared: offline
// sessions are always treated as paid.
func (s *Session) PaymentSatisfied() bool {
	return s.SessionType == SessionOffline || s.PaymentStatus == PaymentCompleted
}
