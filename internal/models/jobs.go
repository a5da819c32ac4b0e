package models

// ConfirmationJob is a queued request to send an order confirmation
type ConfirmationJob struct {
	OrderID  int64 `json:"order_id"`
	Attempts int   `json:"attempts"`
}
