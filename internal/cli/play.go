package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var (
		name       string
		difficulty string
		ready      bool
	)

	cmd := &cobra.Command{
		Use:   "play <room-code>",
		Short: "Join a room and play from the terminal",
		Long: `Connects to a room and relays the game protocol.

Commands once connected:
  ready                       mark yourself ready
  attack <word-id> [misses]   report a completed prompt
  miss                        report a mistyped key
  ping                        liveness check
  quit                        disconnect`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(args[0], name, difficulty, ready)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "NORMAL", "Difficulty: EASY, NORMAL, HARD, SCORE")
	cmd.Flags().BoolVar(&ready, "ready", false, "Send ready immediately after joining")

	return cmd
}

func runPlay(code, name, difficulty string, autoReady bool) error {
	url := cfg.WebSocketURL() + "/ws/" + strings.ToUpper(code)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = conn.Close() }()

	join := map[string]any{
		"type":       "join",
		"playerName": name,
		"difficulty": difficulty,
	}
	if cfg.UserID != "" {
		join["auth"] = map[string]string{
			"userId":      cfg.UserID,
			"accessToken": cfg.Token,
		}
	}
	if err := conn.WriteJSON(join); err != nil {
		return fmt.Errorf("failed to join: %w", err)
	}
	if autoReady {
		if err := conn.WriteJSON(map[string]string{"type": "ready"}); err != nil {
			return err
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				fmt.Println("connection closed")
				return
			}
			printEvent(data)
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-done:
			return nil
		default:
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "ready", "miss", "ping":
			if err := conn.WriteJSON(map[string]string{"type": fields[0]}); err != nil {
				return err
			}
		case "attack":
			if len(fields) < 2 {
				fmt.Println("usage: attack <word-id> [misses]")
				continue
			}
			misses := 0
			if len(fields) > 2 {
				misses, _ = strconv.Atoi(fields[2])
			}
			msg := map[string]any{
				"type":      "attack",
				"wordId":    fields[1],
				"missCount": misses,
			}
			if err := conn.WriteJSON(msg); err != nil {
				return err
			}
		case "quit", "exit":
			return nil
		default:
			fmt.Printf("unknown command: %s\n", fields[0])
		}
	}

	return scanner.Err()
}

// printEvent renders a server message as one readable line, falling back to
// raw JSON for types it doesn't know
func printEvent(data []byte) {
	var event map[string]any
	if err := json.Unmarshal(data, &event); err != nil {
		fmt.Printf("<< %s\n", data)
		return
	}

	switch event["type"] {
	case "joined":
		fmt.Printf("<< joined as %v (players: %v)\n", event["playerId"], event["playerCount"])
	case "playerUpdate":
		if players, ok := event["players"].([]any); ok {
			for _, p := range players {
				if pm, ok := p.(map[string]any); ok {
					fmt.Printf("<< %v  HP=%v lives=%v combo=%v ready=%v\n",
						pm["playerName"], pm["hp"], pm["lives"], pm["combo"], pm["isReady"])
				}
			}
		}
	case "roundIntro":
		fmt.Printf("<< round %v\n", event["round"])
	case "countdown":
		fmt.Printf("<< countdown: %v\n", event["count"])
	case "gameStart":
		fmt.Printf("<< fight! your prompts are in: %s\n", data)
	case "attackNotification":
		fmt.Printf("<< attack: %v hit %v for %v (combo %v, target HP %v)\n",
			event["attackerId"], event["targetId"], event["damage"], event["combo"], event["targetHp"])
	case "missNotification":
		fmt.Printf("<< miss by %v (total %v)\n", event["playerId"], event["missCount"])
	case "knockout":
		fmt.Printf("<< knockout: %v (lives left: %v)\n", event["playerId"], event["remainingLives"])
	case "roundEnd":
		fmt.Printf("<< round %v won by %v\n", event["round"], event["winnerId"])
	case "gameEnd":
		fmt.Printf("<< game over, winner: %v\n", event["winnerId"])
	case "playerLeft":
		fmt.Printf("<< player left: %v\n", event["playerId"])
	case "error":
		fmt.Printf("<< error: %v\n", event["message"])
	case "pong":
		fmt.Println("<< pong")
	default:
		fmt.Printf("<< %s\n", data)
	}
}
