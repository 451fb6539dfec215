package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	var lvl, err = zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
