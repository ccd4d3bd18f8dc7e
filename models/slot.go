package models

import "time"

// AvailabilitySlot is a professional's publishable, bookable time window.
// (professionalRef, date, start) form the natural key; a unique index rejects
// duplicates on bulk publish.
type AvailabilitySlot struct {
	ID              string     `bson:"id" json:"id"`
	ProfessionalRef UserRef    `bson:"professionalRef" json:"professionalRef"`
	Date            string     `bson:"date" json:"date"`   // "2006-01-02"
	Start           int        `bson:"start" json:"start"` // minutes from midnight
	End             int        `bson:"end" json:"end"`     // minutes from midnight
	IsBooked        bool       `bson:"isBooked" json:"isBooked"`
	BookedBy        UserRef    `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
	BookedAt        *time.Time `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}

// SlotInput is one window in a bulk publish request. Start carries no
// required binding so a midnight window (start=0) passes; the service
// validates the range.
type SlotInput struct {
	Date  string `json:"date" binding:"required"`
	Start int    `json:"start"`
	End   int    `json:"end" binding:"required"`
}

// PublishSlotsRequest defines the payload for publishing availability.
type PublishSlotsRequest struct {
	Slots []SlotInput `json:"slots" binding:"required"`
}
