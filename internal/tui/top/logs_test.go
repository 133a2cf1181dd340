package top

import (
	"testing"

	"github.com/playpen/playpen/internal/logging"
	"github.com/stretchr/testify/assert"
)

func Test_logsView(t *testing.T) {
	logger := logging.NewLogger(logging.Options{Level: "debug"})
	logger.Debug("watching project")
	logger.Info("added file", "file", "app.js")
	logger.Warn("slow reload")
	logger.Error("deleting file", "error", "permission denied")

	got := logsView(logger, 120, 10)
	for _, want := range []string{"DEBUG", "INFO", "WARN", "ERROR", "added file", "file=app.js", "slow reload"} {
		assert.Contains(t, got, want)
	}

	// truncated to the height, newest first
	got = logsView(logger, 120, 1)
	assert.Contains(t, got, "deleting file")
	assert.NotContains(t, got, "watching project")
}
