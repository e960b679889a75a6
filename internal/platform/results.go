// Package platform holds what the terminal and window frontends share.
package platform

import (
	"fmt"

	"github.com/vovakirdan/fruitslice/internal/registry"
	"github.com/vovakirdan/fruitslice/internal/storage"
)

// Frontend names recorded with each session.
const (
	FrontendTUI    = "tui"
	FrontendSSH    = "ssh"
	FrontendWindow = "window"
)

// Result is what SaveResult wrote.
type Result struct {
	Score      int
	ScoreSaved bool
	SessionID  int64
}

// SaveResult stores a finished session. The score goes to the high score
// table only when it is positive; the session summary is always recorded
// for games that report one. A nil store saves nothing.
func SaveResult(store *storage.Store, game registry.Game, frontend string) (Result, error) {
	res := Result{Score: game.State().Score}
	if store == nil {
		return res, nil
	}

	if res.Score > 0 {
		if _, err := store.SaveScore(game.ID(), res.Score); err != nil {
			return res, fmt.Errorf("platform: save result: %w", err)
		}
		res.ScoreSaved = true
	}

	rep, ok := game.(registry.Reporter)
	if !ok {
		return res, nil
	}
	r := rep.Report()
	id, err := store.SaveSession(storage.SessionRecord{
		GameID:      game.ID(),
		Frontend:    frontend,
		Score:       r.Score,
		Spawned:     r.Spawned,
		Sliced:      r.Sliced,
		BombsHit:    r.Penalties,
		Missed:      r.Missed,
		Escalations: r.Escalations,
		Duration:    r.Duration,
	})
	if err != nil {
		return res, fmt.Errorf("platform: save result: %w", err)
	}
	res.SessionID = id
	return res, nil
}
