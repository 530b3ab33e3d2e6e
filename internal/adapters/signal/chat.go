package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duet/internal/core"
)

func (ctl *SignalWSController) handlePrivateMessage(
	sid core.SessionID,
	data []byte,
) {
	type messagePayload struct {
		Type       string `json:"type"`
		To         string `json:"to"`
		Message    string `json:"message"`
		SenderName string `json:"senderName"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad private_message payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("private_message without recipient")
		return
	}

	ctl.Hub.PrivateMessage(sid, core.SessionID(p.To), p.SenderName, p.Message)
}

func (ctl *SignalWSController) handleChatHistory(
	sid core.SessionID,
	data []byte,
) {
	type historyPayload struct {
		Type string `json:"type"`
		To   string `json:"to"`
	}
	var p historyPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad retrieve_chat_history payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("retrieve_chat_history without counterpart")
		return
	}

	ctl.Hub.ChatHistory(sid, core.SessionID(p.To))
}

func (ctl *SignalWSController) handleTyping(
	sid core.SessionID,
	data []byte,
) {
	type typingPayload struct {
		Type     string `json:"type"`
		To       string `json:"to"`
		IsTyping bool   `json:"isTyping"`
	}
	var p typingPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad typing payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("typing without recipient")
		return
	}

	ctl.Hub.Typing(sid, core.SessionID(p.To), p.IsTyping)
}
