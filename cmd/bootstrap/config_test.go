package bootstrap

import (
	"bytes"
	"log/slog"
	"testing"

	"happy-hotel/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestLogBookingConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.NewTestConfig()
	cfg.Payment.StripeSecretKey = "sk_test_secret"

	LogBookingConfig(cfg, logger)

	out := buf.String()
	assert.Contains(t, out, "booking configuration loaded")
	assert.Contains(t, out, "nightly_rate_per_room=50")
	assert.Contains(t, out, "payment_auth_limit=1000")
	assert.Contains(t, out, "stripe_key_set=true")
	assert.NotContains(t, out, "sk_test_secret")
}
