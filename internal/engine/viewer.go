package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twenty48/internal/game"
)

// LogViewer logs every board it is shown.
type LogViewer struct {
	logger *log.Logger
	level  log.Level
}

var _ game.Viewer = (*LogViewer)(nil)

// NewLogViewer returns a viewer that logs boards to l at level.
func NewLogViewer(l *log.Logger, level log.Level) *LogViewer {
	return &LogViewer{logger: l, level: level}
}

func (v *LogViewer) Update(s *game.State) {
	v.logger.Log(v.level, "board", "state", s.String(), "max", s.MaxTile().Value())
}
