package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"mindhaven/services/availability"
	"mindhaven/services/payment"
	"mindhaven/services/session"
	"mindhaven/utils"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, availability.ErrSlotNotFound),
		errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidState),
		errors.Is(err, availability.ErrSlotAlreadyBooked):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidArgument),
		errors.Is(err, availability.ErrInvalidSlot),
		errors.Is(err, utils.ErrResetTokenInvalid):
		return http.StatusBadRequest
	case errors.Is(err, payment.ErrUpstreamPayment):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
