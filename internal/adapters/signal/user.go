package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duet/internal/core"
)

func (ctl *SignalWSController) handleSetUsername(
	sid core.SessionID,
	data []byte,
) {
	type usernamePayload struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}
	var p usernamePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad set_username payload")
		return
	}

	// Empty and duplicate usernames are allowed.
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("username", p.Username).Msg("set_username")
	ctl.Hub.SetUsername(sid, p.Username)
}
