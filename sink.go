package lineprogress

import (
	"io"

	"github.com/rs/zerolog"
)

// sink writes whole lines and swallows failures; a broken display must not stop real work.
type sink struct {
	w      io.Writer
	logger zerolog.Logger
	failed bool
}

func (s *sink) write(line []byte) {
	if _, err := s.w.Write(line); err != nil && !s.failed {
		s.failed = true
		s.logger.Debug().Err(err).Msg("progress output failed, further write errors are ignored")
	}
}
