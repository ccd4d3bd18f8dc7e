package models

// BillingDetails carries the payer information forwarded to the payment
// gateway when a checkout is created.
type BillingDetails struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// PaymentInitRequest is the payload for starting a gateway checkout.
type PaymentInitRequest struct {
	SessionID string         `json:"sessionId" binding:"required"`
	Amount    int64          `json:"amount" binding:"required"` // minor units
	Currency  string         `json:"currency"`
	Billing   BillingDetails `json:"billing" binding:"required"`
}
