package app

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duet/internal/core"
	"github.com/dkeye/Duet/internal/domain"
)

// Terminal and rejection reasons sent alongside call_ended and
// call_rejected events.
const (
	ReasonUserBusy     = "User is busy"
	ReasonCallerBusy   = "Already in a call"
	ReasonEndedByPeer  = "Call ended by peer"
	ReasonRejected     = "Call rejected by peer"
	ReasonDisconnected = "Peer disconnected"
)

// Hub is the coordinating service object: it owns the connection
// registry, the call relation and the chat history, and every signaling
// operation goes through it. Constructed once at process start and
// handed to the transport adapter.
type Hub struct {
	Registry *Registry
	Calls    *CallManager
	History  *History
}

func NewHub() *Hub {
	return &Hub{
		Registry: NewRegistry(),
		Calls:    NewCallManager(),
		History:  NewHistory(),
	}
}

func (h *Hub) emit(sid core.SessionID, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("emit marshal")
		return
	}
	h.Registry.EmitTo(sid, b)
}

func (h *Hub) broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("broadcast marshal")
		return
	}
	h.Registry.Broadcast(b)
}

func (h *Hub) broadcastUsers() {
	resp := struct {
		Type  string             `json:"type"`
		Users []core.PresenceDTO `json:"users"`
	}{
		Type:  "users_list",
		Users: h.Registry.Snapshot(h.Calls.InCall),
	}
	h.broadcast(resp)
}

// Connect binds a fresh session to the hub.
func (h *Hub) Connect(sid core.SessionID, conn core.SignalConnection, cancel context.CancelFunc) {
	h.Registry.Bind(sid, conn, cancel)
}

// SetUsername declares the session's display name and pushes the
// updated presence view to everyone.
func (h *Hub) SetUsername(sid core.SessionID, name string) {
	h.Registry.SetUsername(sid, name)
	h.broadcastUsers()
}

// PrivateMessage appends the message to the pair's history and forwards
// it. The append happens even when the recipient is gone, so a later
// history retrieval by the sender still shows it.
func (h *Hub) PrivateMessage(from, to core.SessionID, senderName, body string) {
	msg := domain.Message{From: domain.UserID(from), SenderName: senderName, Body: body}
	h.History.Append(from, to, msg)
	resp := struct {
		Type string `json:"type"`
		domain.Message
	}{Type: "private_message", Message: msg}
	h.emit(to, resp)
}

// ChatHistory returns the full stored sequence for the pair to the
// requester only.
func (h *Hub) ChatHistory(requester, counterpart core.SessionID) {
	resp := struct {
		Type     string           `json:"type"`
		Messages []domain.Message `json:"messages"`
	}{
		Type:     "chat_history",
		Messages: h.History.Get(requester, counterpart),
	}
	h.emit(requester, resp)
}

// Typing is a stateless pass-through notification.
func (h *Hub) Typing(from, to core.SessionID, isTyping bool) {
	resp := struct {
		Type     string        `json:"type"`
		UserID   domain.UserID `json:"userId"`
		IsTyping bool          `json:"isTyping"`
	}{Type: "typing", UserID: domain.UserID(from), IsTyping: isTyping}
	h.emit(to, resp)
}

// RequestCall runs call admission. A busy side on either end rejects
// the call synchronously towards the caller with no state change;
// otherwise both sides are paired and the offer is forwarded.
func (h *Hub) RequestCall(from, to core.SessionID, offer webrtc.SessionDescription) {
	if err := h.Calls.Begin(from, to); err != nil {
		reason := ReasonUserBusy
		if errors.Is(err, ErrCallerBusy) {
			reason = ReasonCallerBusy
		}
		log.Info().Str("module", "app.hub").Str("from", string(from)).Str("to", string(to)).Str("reason", reason).Msg("call rejected at admission")
		h.emit(from, callTerminal{Type: "call_rejected", From: domain.UserID(to), Reason: reason})
		return
	}
	resp := struct {
		Type  string                    `json:"type"`
		From  domain.UserID             `json:"from"`
		Offer webrtc.SessionDescription `json:"offer"`
	}{Type: "receive_offer", From: domain.UserID(from), Offer: offer}
	h.emit(to, resp)
}

// Answer forwards the answer payload as-is. No pairing check: the
// target field is trusted.
func (h *Hub) Answer(from, to core.SessionID, answer webrtc.SessionDescription) {
	resp := struct {
		Type   string                    `json:"type"`
		From   domain.UserID             `json:"from"`
		Answer webrtc.SessionDescription `json:"answer"`
	}{Type: "receive_answer", From: domain.UserID(from), Answer: answer}
	h.emit(to, resp)
}

// Candidate forwards an ICE candidate, stateless.
func (h *Hub) Candidate(from, to core.SessionID, cand webrtc.ICECandidateInit) {
	resp := struct {
		Type      string                  `json:"type"`
		From      domain.UserID           `json:"from"`
		Candidate webrtc.ICECandidateInit `json:"candidate"`
	}{Type: "ice_candidate", From: domain.UserID(from), Candidate: cand}
	h.emit(to, resp)
}

type callTerminal struct {
	Type   string        `json:"type"`
	From   domain.UserID `json:"from"`
	Reason string        `json:"reason"`
}

// EndCall tears down the pairing between both sides and notifies the
// other side. Tolerant of an already-absent pairing.
func (h *Hub) EndCall(from, to core.SessionID) {
	h.Calls.End(from, to)
	h.emit(to, callTerminal{Type: "call_ended", From: domain.UserID(from), Reason: ReasonEndedByPeer})
}

// RejectCall tears down the pairing and notifies the other side with
// the rejection reason.
func (h *Hub) RejectCall(from, to core.SessionID) {
	h.Calls.End(from, to)
	h.emit(to, callTerminal{Type: "call_rejected", From: domain.UserID(from), Reason: ReasonRejected})
}

// MediaState forwards a mic/camera toggle notification, stateless.
func (h *Hub) MediaState(from, to core.SessionID, micEnabled, cameraEnabled bool) {
	resp := struct {
		Type          string        `json:"type"`
		From          domain.UserID `json:"from"`
		MicEnabled    bool          `json:"micEnabled"`
		CameraEnabled bool          `json:"cameraEnabled"`
	}{Type: "media_controller", From: domain.UserID(from), MicEnabled: micEnabled, CameraEnabled: cameraEnabled}
	h.emit(to, resp)
}

// Disconnect runs terminal cleanup for a session: call teardown first
// (so the surviving peer is notified), then registry removal, then the
// presence broadcast reflecting the post-cleanup state.
func (h *Hub) Disconnect(sid core.SessionID) {
	if peer, ok := h.Calls.Drop(sid); ok {
		h.emit(peer, callTerminal{Type: "call_ended", From: domain.UserID(sid), Reason: ReasonDisconnected})
	}
	h.Registry.Remove(sid)
	h.broadcastUsers()
}
