package logging

import (
	"os"
	"path/filepath"
	"testing"

	"daily-app/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_FileOutput(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	closer, err := Setup(config.LogConfig{File: path, Level: "debug", Format: "json"})
	require.NoError(t, err)
	logrus.WithField("user_id", 3).Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"user_id":3`)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

// TestSetup_BadLevel 测试内容：非法日志级别回退到 info
func TestSetup_BadLevel(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	closer, err := Setup(config.LogConfig{Level: "loud"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
