package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("granularity"))
	assert.True(t, keepInDevelopment("urgent_open"))
	assert.True(t, keepInDevelopment("report_run_id"))
	assert.False(t, keepInDevelopment("remote_addr"))
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	l := L.WithFields(Fields{"remote_addr": "127.0.0.1", "path": "/"}).(*logger)
	assert.Equal(t, "127.0.0.1", l.entry.Data["remote_addr"])
	assert.Equal(t, "/", l.entry.Data["path"])
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	l := L.WithFields(Fields{"remote_addr": "127.0.0.1", "path": "/"}).(*logger)
	_, hasAddr := l.entry.Data["remote_addr"]
	assert.False(t, hasAddr)
	assert.Equal(t, "/", l.entry.Data["path"])
}

func TestSetLevel(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	SetLevel("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	SetLevel("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
