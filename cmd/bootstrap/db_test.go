package bootstrap

import (
	"bytes"
	"log/slog"
	"testing"

	"happy-hotel/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestPoolAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.NewTestConfig()
	cfg.DB.Password = "hunter2"
	cfg.DB.MaxConns = 7

	logger.Info("booking database connected", poolAttrs(cfg.DB)...)

	out := buf.String()
	assert.Contains(t, out, "max_conns=7")
	assert.Contains(t, out, "database="+cfg.DB.DBName)
	assert.NotContains(t, out, "hunter2")
}
