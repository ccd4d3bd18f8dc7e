package session

import (
	"time"

	"mindhaven/models"
)

// EvaluateJoinAccess is the pure access gate. A join action is exposed only
// when the session is approved, the payment gate is cleared (offline sessions
// always clear it) and the scheduled date falls on the current calendar day.
// It is a projection over stored fields so server and clients derive the same
// answer; the result is never persisted.
func EvaluateJoinAccess(sess *models.Session, now time.Time) JoinVerdict {
	if sess.SessionStatus != models.SessionApproved {
		return JoinVerdict{Allowed: false, Reason: "session is not approved"}
	}
	if !sess.PaymentSatisfied() {
		return JoinVerdict{Allowed: false, Reason: "payment is not completed"}
	}
	if !sameCalendarDay(sess.SessionDate, now) {
		return JoinVerdict{Allowed: false, Reason: "session is not scheduled for today"}
	}
	return JoinVerdict{Allowed: true}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
