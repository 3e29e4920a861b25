package impl

import (
	"io"
	"log/slog"

	"timeclock/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthTestConfig(bcryptCost int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: bcryptCost,
		},
	}
}
