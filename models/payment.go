package models

// PaymentState is the state machine of the simulated payment gateway.
type PaymentState string

const (
	PaymentLoading PaymentState = "loading"
	PaymentSuccess PaymentState = "success"
	PaymentError   PaymentState = "error"
	PaymentTimeout PaymentState = "timeout"
	PaymentOffline PaymentState = "offline"
)

// IsRetryable reports whether a payment attempt in this state may be
// retried by the gateway.
func (s PaymentState) IsRetryable() bool {
	switch s {
	case PaymentError, PaymentTimeout, PaymentOffline:
		return true
	}
	return false
}
