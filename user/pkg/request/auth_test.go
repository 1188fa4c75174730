package request

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoginMasksPasswordInLogs(t *testing.T) {
	t.Parallel()

	buf := bytes.Buffer{}
	logger := zerolog.New(&buf)

	logger.Info().
		Object("login", Login{Email: "ayesha@example.com", Password: "hunter2secret"}).
		Msg("login attempt")

	assert.Contains(t, buf.String(), "ayesha@example.com")
	assert.NotContains(t, buf.String(), "hunter2secret")
}

func TestRegisterMasksPasswordInLogs(t *testing.T) {
	t.Parallel()

	buf := bytes.Buffer{}
	logger := zerolog.New(&buf)

	logger.Info().
		Object("register", Register{
			Name:     "Ayesha",
			Email:    "ayesha@example.com",
			Password: "hunter2secret",
		}).
		Msg("register attempt")

	assert.Contains(t, buf.String(), "Ayesha")
	assert.NotContains(t, buf.String(), "hunter2secret")
}
