package handlers

// HandlerBundle groups the handlers wired in main.go for route registration.
type HandlerBundle struct {
	Session      *SessionHandler
	Availability *AvailabilityHandler
	Payment      *PaymentHandler
	Auth         *AuthHandler
}
