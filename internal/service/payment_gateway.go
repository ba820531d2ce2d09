package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"kopikita/models"
	"kopikita/pkg/logger"
)

// Simulated processing delays: cash settles at the counter, card and
// e-wallet go through the pretend network.
const (
	cashProcessingDelay    = 1 * time.Second
	defaultProcessingDelay = 3 * time.Second
	maxPaymentAttempts     = 3
)

const pickupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// PaymentReceipt is the gateway's result for a successful payment.
type PaymentReceipt struct {
	TransactionID string              `json:"transaction_id"`
	PickupCode    string              `json:"pickup_code,omitempty"`
	State         models.PaymentState `json:"state"`
	Attempts      int                 `json:"attempts"`
	PaidAt        time.Time           `json:"paid_at"`
}

// PaymentGatewayInterface processes (simulated) payments.
type PaymentGatewayInterface interface {
	Process(ctx context.Context, method models.PaymentMethod) (*PaymentReceipt, error)
}

// PaymentGateway simulates a payment processor. Each attempt runs the
// loading delay and then lands in a terminal state; retryable failures are
// retried with a shorter delay each time, per the loading-sequence retry
// design.
type PaymentGateway struct {
	logger *logger.Logger

	// outcome decides the terminal state of one attempt. The default
	// always succeeds; tests swap it to exercise the failure states.
	outcome func(attempt int) models.PaymentState

	// sleep is replaceable in tests so retries don't take wall time.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPaymentGateway creates a gateway with the default always-succeed
// outcome.
func NewPaymentGateway(logger *logger.Logger) *PaymentGateway {
	return &PaymentGateway{
		logger:  logger.WithComponent("payment_gateway"),
		outcome: func(int) models.PaymentState { return models.PaymentSuccess },
		sleep:   sleepCtx,
	}
}

// WithOutcome overrides the attempt outcome function.
func (g *PaymentGateway) WithOutcome(outcome func(attempt int) models.PaymentState) *PaymentGateway {
	g.outcome = outcome
	return g
}

// WithSleep overrides the delay function.
func (g *PaymentGateway) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *PaymentGateway {
	g.sleep = sleep
	return g
}

// Process runs the simulated payment for the given method. Retryable
// failure states (error, timeout, offline) are retried up to the attempt
// limit, halving the simulated delay on each retry.
func (g *PaymentGateway) Process(ctx context.Context, method models.PaymentMethod) (*PaymentReceipt, error) {
	if !method.IsValid() {
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}

	delay := defaultProcessingDelay
	if method == models.PaymentCash {
		delay = cashProcessingDelay
	}

	var state models.PaymentState
	for attempt := 1; attempt <= maxPaymentAttempts; attempt++ {
		state = models.PaymentLoading
		g.logger.Info("Processing payment",
			"method", method,
			"attempt", attempt,
			"delay_ms", delay.Milliseconds())

		if err := g.sleep(ctx, delay); err != nil {
			g.logger.Warn("Payment processing cancelled", "method", method, "error", err)
			return nil, fmt.Errorf("payment cancelled: %v", err)
		}

		state = g.outcome(attempt)
		if state == models.PaymentSuccess {
			receipt := &PaymentReceipt{
				TransactionID: uuid.NewString(),
				State:         state,
				Attempts:      attempt,
				PaidAt:        time.Now(),
			}
			if method == models.PaymentCash {
				receipt.PickupCode = generatePickupCode()
			}

			g.logger.Info("Payment completed",
				"method", method,
				"transaction_id", receipt.TransactionID,
				"attempts", attempt)
			return receipt, nil
		}

		if !state.IsRetryable() {
			break
		}

		g.logger.Warn("Payment attempt failed, retrying",
			"method", method,
			"state", state,
			"attempt", attempt)

		// Subsequent attempts use a shorter delay.
		delay /= 2
	}

	g.logger.Error("Payment failed", "method", method, "state", state)
	return nil, fmt.Errorf("payment failed: %s", state)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generatePickupCode builds the 6-character code shown at the counter for
// cash payments.
func generatePickupCode() string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(pickupCodeAlphabet[rand.Intn(len(pickupCodeAlphabet))])
	}
	return b.String()
}
