package room

import (
	"context"
	"log/slog"

	"github.com/typefight/typefighter-go/internal/model"
)

// startGame resets both players for a fresh match and begins round 1
func (r *Room) startGame() {
	r.logger.Info("match starting", slog.Int("player_count", len(r.players)))

	for _, p := range r.players {
		p.ResetForMatch()
	}
	r.round = 0
	r.winner = ""

	r.beginRound(true)
}

// beginRound resets per-round state and kicks off the timed presentation
// sequence: intro dwell, countdown ticks, prompt assignment, settle, clear.
// Each step is scheduled rather than slept through, so the actor keeps
// serving messages between steps and a room reset strands the remainder.
func (r *Room) beginRound(increment bool) {
	r.status = model.RoomStatusWaiting

	if increment {
		r.round++
		if r.round > model.MaxRounds {
			r.round = model.MaxRounds
		}
	}

	for _, p := range r.players {
		p.ResetForRound()
	}
	r.broadcastPlayerUpdate()

	r.broadcast(model.NewRoundIntro(r.round))
	r.scheduleStep(roundIntroDwell, func() { r.countdownStep(countdownFrom) })
}

// countdownStep broadcasts one tick and schedules the next, ending with the
// round start after the zero tick's delay
func (r *Room) countdownStep(count int) {
	r.broadcast(model.NewCountdown(count))

	if count > 0 {
		r.scheduleStep(countdownTick, func() { r.countdownStep(count - 1) })
		return
	}
	r.scheduleStep(countdownTick, r.startRound)
}

// startRound assigns every player a prompt and opens play
func (r *Room) startRound() {
	words := make(map[model.PlayerID]model.Word, len(r.players))
	for _, id := range r.order {
		player, ok := r.players[id]
		if !ok {
			continue
		}
		word, err := r.assignWord(player)
		if err != nil {
			r.logger.Error("failed to assign round prompt",
				slog.String("player_id", string(id)),
				slog.String("error", err.Error()),
			)
			continue
		}
		words[id] = *word
	}

	r.status = model.RoomStatusPlaying
	r.broadcast(model.NewGameStart(r.round, words))

	r.scheduleStep(gameStartSettle, func() {
		r.broadcast(model.NewCountdown(model.CountdownCleared))
		r.broadcastPlayerUpdate()
	})
}

// assignWord fetches a fresh prompt for the player's tier and assigns it
func (r *Room) assignWord(player *model.Player) (*model.Word, error) {
	ctx, cancel := context.WithTimeout(context.Background(), promptFetchTimeout)
	defer cancel()

	word, err := r.prompts.RandomPrompt(ctx, player.Difficulty)
	if err != nil {
		return nil, err
	}
	player.CurrentWord = word
	return word, nil
}

// knockout handles a player's HP reaching zero: lives tick down, the round
// ends, and after the dwell either the next round begins or the match ends
func (r *Room) knockout(knockedID model.PlayerID) {
	player, ok := r.players[knockedID]
	if !ok {
		return
	}

	player.HP = 0
	player.Lives--
	if player.Lives < 0 {
		player.Lives = 0
	}
	player.Combo = 0
	player.MissCount = 0

	r.broadcast(model.NewKnockout(knockedID, player.Lives, r.round))

	r.status = model.RoomStatusWaiting
	r.broadcastPlayerUpdate()

	winnerID := r.opponentOf(knockedID)
	if winnerID == "" {
		// Degenerate: no opponent left, the knocked player takes the round
		winnerID = knockedID
	}

	r.broadcast(model.NewRoundEnd(r.round, winnerID, r.snapshotPlayers()))

	r.scheduleStep(knockoutDwell, func() {
		if player.Lives == 0 || r.round >= model.MaxRounds {
			r.endGame(winnerID)
			return
		}
		r.beginRound(true)
	})
}

// endGame finalizes the match and hands the outcome to the result sink
func (r *Room) endGame(winnerID model.PlayerID) {
	r.status = model.RoomStatusFinished
	r.winner = winnerID

	r.broadcast(model.NewGameEnd(winnerID, r.snapshotPlayers()))
	r.logger.Info("match finished",
		slog.String("winner_id", string(winnerID)),
		slog.Int("rounds_played", r.round),
	)

	r.persistOutcome(winnerID)
}

// persistOutcome submits the match record off the actor loop, after the
// game-end broadcast. Failures are logged and never reach room state.
func (r *Room) persistOutcome(winnerID model.PlayerID) {
	if r.results == nil {
		return
	}

	winner, ok := r.players[winnerID]
	if !ok {
		r.logger.Warn("cannot persist match: winner state missing")
		return
	}
	var loser *model.Player
	for _, id := range r.order {
		if id == winnerID {
			continue
		}
		if p, ok := r.players[id]; ok {
			loser = p
			break
		}
	}
	if loser == nil {
		r.logger.Warn("cannot persist match: loser state missing")
		return
	}

	// Copy everything the goroutine needs; actor state stays on the loop
	record := &model.MatchRecord{
		RoomID:       r.code,
		WinnerName:   winner.Name,
		LoserName:    loser.Name,
		RoundsPlayed: r.round,
		EndedAt:      r.clock.Now(),
	}
	var winnerUserID, loserUserID string
	if ac, ok := r.authCtx[winnerID]; ok {
		winnerUserID = ac.UserID
	}
	if ac, ok := r.authCtx[loser.ID]; ok {
		loserUserID = ac.UserID
	}

	logger := r.logger
	sink := r.results

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if winnerUserID == "" {
			// An anonymous winner can't produce a ranked result, but an
			// authenticated loser still loses their streak
			if loserUserID != "" {
				if err := sink.ResetStreak(ctx, loserUserID); err != nil {
					logger.Warn("failed to reset loser streak", slog.String("error", err.Error()))
				}
			}
			logger.Info("skipping match record: winner not authenticated")
			return
		}

		record.WinnerUserID = winnerUserID
		record.LoserUserID = loserUserID
		if err := sink.RecordMatch(ctx, record); err != nil {
			logger.Error("failed to persist match result", slog.String("error", err.Error()))
		}
	}()
}

// ensureHeartbeat keeps a recurring liveness broadcast scheduled while any
// session is attached. Heartbeats span matches, so they are not generation
// guarded.
func (r *Room) ensureHeartbeat() {
	if r.heartbeatOn || len(r.sessions) == 0 {
		return
	}
	r.heartbeatOn = true
	r.clock.AfterFunc(heartbeatInterval, func() {
		r.post(r.heartbeatTick)
	})
}

func (r *Room) heartbeatTick() {
	r.heartbeatOn = false
	if len(r.sessions) == 0 {
		return
	}
	r.broadcast(model.NewPong())
	r.ensureHeartbeat()
}
