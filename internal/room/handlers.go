package room

import (
	"context"
	"log/slog"
	"strings"

	"github.com/typefight/typefighter-go/internal/model"
)

// handleJoin admits a player into the room
func (r *Room) handleJoin(sess *Session, msg *model.ClientMessage) {
	// A bound session re-joining would overwrite its attachment and orphan
	// the original player in the room
	if sess.PlayerID() != "" {
		r.sendError(sess, "Already joined")
		return
	}
	if len(r.players) >= model.MaxPlayers {
		r.sendError(sess, "Room is full")
		return
	}
	if r.status != model.RoomStatusWaiting {
		r.sendError(sess, "Game already in progress")
		return
	}
	if !model.ValidDifficulty(msg.Difficulty) {
		r.sendError(sess, "Unknown difficulty")
		return
	}

	name := strings.TrimSpace(msg.PlayerName)
	if name == "" {
		name = "Anonymous"
	}

	playerID := model.PlayerID(r.random.ID("p_"))
	player := model.NewPlayer(playerID, name, msg.Difficulty)

	r.players[playerID] = player
	r.order = append(r.order, playerID)

	// The attachment on the session is the durable binding; the session map
	// is only a cache over it
	sess.Attach(playerID)
	r.sessions[playerID] = sess

	if msg.Auth != nil && msg.Auth.UserID != "" {
		r.authCtx[playerID] = &model.AuthContext{UserID: msg.Auth.UserID}
		if msg.Auth.AccessToken != "" && r.auth != nil {
			r.verifyAsync(playerID, msg.Auth.UserID, msg.Auth.AccessToken)
		}
	}

	sess.Send(model.NewJoined(playerID, r.code, len(r.players)))
	r.broadcastPlayerUpdate()
	r.ensureHeartbeat()

	r.logger.Info("player joined",
		slog.String("player_id", string(playerID)),
		slog.String("difficulty", string(msg.Difficulty)),
		slog.Int("player_count", len(r.players)),
	)
}

// verifyAsync resolves an auth claim off the actor loop and posts the result
// back. Join acknowledgment never waits on this; on failure the player keeps
// the claimed, unverified identity.
func (r *Room) verifyAsync(playerID model.PlayerID, claimedUserID, accessToken string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		defer cancel()

		userID, err := r.auth.VerifyClaim(ctx, claimedUserID, accessToken)

		r.post(func() {
			ac, ok := r.authCtx[playerID]
			if !ok {
				// Player left before verification finished
				return
			}
			if err != nil {
				r.logger.Warn("auth verification degraded, keeping claimed identity",
					slog.String("player_id", string(playerID)),
					slog.String("error", err.Error()),
				)
				return
			}
			ac.UserID = userID
			ac.Verified = true
			r.logger.Info("player identity verified", slog.String("player_id", string(playerID)))
		})
	}()
}

// handleReady marks a player ready and starts the match when both are
func (r *Room) handleReady(sess *Session) {
	player := r.boundPlayer(sess)
	if player == nil {
		return
	}

	player.IsReady = true
	r.broadcastPlayerUpdate()

	if len(r.players) != model.MaxPlayers {
		return
	}
	for _, p := range r.players {
		if !p.IsReady {
			return
		}
	}
	r.startGame()
}

// handleAttack validates and applies a completed-prompt attack
func (r *Room) handleAttack(sess *Session, msg *model.ClientMessage) {
	attacker := r.boundPlayer(sess)
	if attacker == nil {
		return
	}

	if r.status != model.RoomStatusPlaying {
		r.sendError(sess, "Round not in progress")
		return
	}
	if attacker.CurrentWord == nil || attacker.CurrentWord.ID != msg.WordID {
		r.sendError(sess, "Invalid word")
		return
	}

	targetID := r.opponentOf(attacker.ID)
	if targetID == "" {
		r.sendError(sess, "No opponent")
		return
	}
	target := r.players[targetID]

	// Fetch the next prompt before mutating anything, so a prompt-source
	// failure leaves both players untouched
	ctx, cancel := context.WithTimeout(context.Background(), promptFetchTimeout)
	nextWord, err := r.prompts.RandomPrompt(ctx, attacker.Difficulty)
	cancel()
	if err != nil {
		r.logger.Error("failed to assign next word",
			slog.String("player_id", string(attacker.ID)),
			slog.String("error", err.Error()),
		)
		r.sendError(sess, "Failed to assign next word")
		return
	}

	// Damage uses the combo count before this completion increments it
	damage := model.DamageFor(attacker.Difficulty, attacker.Combo)
	target.HP -= damage
	if target.HP < 0 {
		target.HP = 0
	}

	// Per-prompt misses accumulate on the attacker without touching combo;
	// the prompt was still completed
	attacker.MissCount += msg.MissCount
	attacker.Combo++
	attacker.CurrentWord = nextWord

	r.broadcast(model.NewAttackNotification(attacker.ID, targetID, damage, attacker.Combo, target.HP, *nextWord))
	r.broadcastPlayerUpdate()

	if target.HP == 0 {
		r.knockout(targetID)
	}
}

// handleMiss resets the sender's combo. Independent of the per-attack miss
// accumulation: this path fires on a mistyped key, mid-prompt.
func (r *Room) handleMiss(sess *Session) {
	player := r.boundPlayer(sess)
	if player == nil {
		return
	}

	player.Combo = 0
	player.MissCount++

	r.broadcast(model.NewMissNotification(player.ID, player.MissCount))
	r.broadcastPlayerUpdate()
}

// handleDisconnect removes the departing player and recycles the room when
// the last session drops
func (r *Room) handleDisconnect(sess *Session) {
	playerID := sess.PlayerID()
	if playerID != "" {
		if _, ok := r.players[playerID]; ok {
			delete(r.players, playerID)
			r.removeFromOrder(playerID)
			delete(r.sessions, playerID)
			delete(r.authCtx, playerID)

			r.broadcast(model.NewPlayerLeft(playerID))
			r.logger.Info("player left",
				slog.String("player_id", string(playerID)),
				slog.Int("remaining_sessions", len(r.sessions)),
			)
		} else {
			delete(r.sessions, playerID)
		}
	}
	sess.Close()

	if len(r.sessions) == 0 {
		r.resetRoom()
	}
}

// boundPlayer resolves the sender's player via the session attachment,
// repairing the fast-path cache if it has drifted. Sends the appropriate
// protocol error and returns nil when the session is unbound or stale.
func (r *Room) boundPlayer(sess *Session) *model.Player {
	playerID := sess.PlayerID()
	if playerID == "" {
		r.sendError(sess, "Not joined")
		return nil
	}

	player, ok := r.players[playerID]
	if !ok {
		r.sendError(sess, "Player not found")
		return nil
	}

	if r.sessions[playerID] != sess {
		r.sessions[playerID] = sess
	}
	return player
}

func (r *Room) removeFromOrder(playerID model.PlayerID) {
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
