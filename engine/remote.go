package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"isolation/game"
	"isolation/player"

	"github.com/rs/zerolog/log"
)

const networkMarginDivisor = 10

// RemotePlayer asks a player.Server for its action. States must be
// snapshottable.
type RemotePlayer struct {
	URL       string
	TimeLimit time.Duration
	Client    *http.Client
}

func NewRemotePlayer(url string, timeLimit time.Duration) *RemotePlayer {
	return &RemotePlayer{
		URL:       url,
		TimeLimit: timeLimit,
		Client:    &http.Client{Timeout: timeLimit + time.Second},
	}
}

// GetAction publishes nothing when the request fails, which forfeits the game.
func (r *RemotePlayer) GetAction(state game.State, out player.Publisher) {
	action, err := r.requestAction(state)
	if err != nil {
		log.Error().Err(err).Msgf("remote player at %s failed", r.URL)
		return
	}
	out.Put(action)
}

// searchBudget leaves a tenth of the time limit for the round trip, so the
// answer arrives before the engine stops waiting.
func (r *RemotePlayer) searchBudget() time.Duration {
	return r.TimeLimit - r.TimeLimit/networkMarginDivisor
}

func (r *RemotePlayer) requestAction(state game.State) (game.Action, error) {
	snapshotter, ok := state.(interface{ Snapshot() game.Snapshot })
	if !ok {
		return 0, fmt.Errorf("state %T cannot be sent to a remote player", state)
	}
	body, err := json.Marshal(player.ActionRequest{
		State:       snapshotter.Snapshot(),
		TimeLimitMs: int(r.searchBudget() / time.Millisecond),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := r.Client.Post(r.URL+"/action", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to request action: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("remote player returned status %d: %s", resp.StatusCode, out)
	}

	var decoded player.ActionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("failed to decode action: %w", err)
	}
	return game.Action(decoded.Action), nil
}
