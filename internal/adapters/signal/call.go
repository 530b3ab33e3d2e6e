package signal

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duet/internal/core"
)

func (ctl *SignalWSController) handleIncomingCall(
	sid core.SessionID,
	data []byte,
) {
	type callPayload struct {
		Type  string                    `json:"type"`
		To    string                    `json:"to"`
		Offer webrtc.SessionDescription `json:"offer"`
	}
	var p callPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad incoming_call payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("incoming_call without callee")
		return
	}

	log.Info().Str("module", "signal").Str("from", string(sid)).Str("to", p.To).Msg("incoming call")
	ctl.Hub.RequestCall(sid, core.SessionID(p.To), p.Offer)
}

func (ctl *SignalWSController) handleIncomingAnswer(
	sid core.SessionID,
	data []byte,
) {
	type answerPayload struct {
		Type   string                    `json:"type"`
		To     string                    `json:"to"`
		Answer webrtc.SessionDescription `json:"answer"`
	}
	var p answerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad incoming_answer payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("incoming_answer without target")
		return
	}

	ctl.Hub.Answer(sid, core.SessionID(p.To), p.Answer)
}

func (ctl *SignalWSController) handleIceCandidate(
	sid core.SessionID,
	data []byte,
) {
	type candidatePayload struct {
		Type      string                  `json:"type"`
		To        string                  `json:"to"`
		Candidate webrtc.ICECandidateInit `json:"candidate"`
	}
	var p candidatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad ice_candidate payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("ice_candidate without target")
		return
	}

	ctl.Hub.Candidate(sid, core.SessionID(p.To), p.Candidate)
}

func (ctl *SignalWSController) handleCallEnded(
	sid core.SessionID,
	data []byte,
) {
	type endPayload struct {
		Type string `json:"type"`
		To   string `json:"to"`
	}
	var p endPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad call_ended payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("call_ended without peer")
		return
	}

	log.Info().Str("module", "signal").Str("from", string(sid)).Str("to", p.To).Msg("call ended")
	ctl.Hub.EndCall(sid, core.SessionID(p.To))
}

func (ctl *SignalWSController) handleCallRejected(
	sid core.SessionID,
	data []byte,
) {
	type rejectPayload struct {
		Type string `json:"type"`
		To   string `json:"to"`
	}
	var p rejectPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad call_rejected payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("call_rejected without peer")
		return
	}

	log.Info().Str("module", "signal").Str("from", string(sid)).Str("to", p.To).Msg("call rejected")
	ctl.Hub.RejectCall(sid, core.SessionID(p.To))
}

func (ctl *SignalWSController) handleMediaController(
	sid core.SessionID,
	data []byte,
) {
	type mediaPayload struct {
		Type          string `json:"type"`
		To            string `json:"to"`
		MicEnabled    bool   `json:"micEnabled"`
		CameraEnabled bool   `json:"cameraEnabled"`
	}
	var p mediaPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad media_controller payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("media_controller without recipient")
		return
	}

	ctl.Hub.MediaState(sid, core.SessionID(p.To), p.MicEnabled, p.CameraEnabled)
}
