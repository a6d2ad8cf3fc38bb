package handler

import (
	"testing"

	"github.com/coinkeep/coin-keeper/internal/config"
	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
