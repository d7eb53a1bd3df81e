package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, "18:00", cfg.FixedSweepTime)
		assert.Equal(t, "1 AM", cfg.FixedSweepLabel)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Nil(t, cfg.FixedTargetIDs)
	})

	t.Run("Should split and trim the target list", func(t *testing.T) {
		t.Setenv("TARGET_USER_IDS", " 123, 456 ,,789")
		cfg := Load()
		assert.Equal(t, []string{"123", "456", "789"}, cfg.FixedTargetIDs)
	})
}
