// Package chat mediates the companion conversation: it threads the
// server-assigned conversation id through successive sends, keeps the
// displayed transcript consistent with the authoritative server transcript,
// and exposes the per-screen send state machine.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/agoramujeres/agora-client/internal/client/i18n"
	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/common"
	"github.com/agoramujeres/agora-client/internal/logging"
)

// historyLimit bounds transcript fetches.
const historyLimit = 50

// Delivery is the lifecycle state of one transcript entry.
type Delivery string

const (
	DeliveryPending   Delivery = "pending"
	DeliveryConfirmed Delivery = "confirmed"
	DeliveryFailed    Delivery = "failed"
)

// Entry is one transcript line together with its delivery state.
type Entry struct {
	models.ChatMessage
	Delivery Delivery
}

// State is the per-screen send state machine.
type State string

const (
	StateIdle        State = "idle"
	StateSending     State = "sending"
	StateRedirecting State = "redirecting"
)

// SendResult reports the outcome of one exchange.
type SendResult struct {
	Reply                string
	ConversationID       string
	RequiresSubscription bool
}

// gateway is the slice of the api client this package needs.
type gateway interface {
	SendChatMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	GetChatHistory(ctx context.Context, deviceID string, limit int) ([]models.ChatMessage, error)
	GetConversationMessages(ctx context.Context, deviceID, conversationID string, limit int) ([]models.ChatMessage, error)
	ClearChatHistory(ctx context.Context, deviceID string) error
}

type Resolver struct {
	gateway gateway
	sess    *session.Container
	log     logging.Logger

	mu             sync.Mutex
	state          State
	conversationID string
	transcript     []Entry
}

func NewResolver(gw gateway, sess *session.Container, log logging.Logger) *Resolver {
	return &Resolver{
		gateway: gw,
		sess:    sess,
		log:     log.With("component", "chat"),
		state:   StateIdle,
	}
}

// LoadHistory seeds the transcript from the server's latest conversation.
// An empty history gets the localized companion intro instead, so the
// screen never opens blank. The active conversation id stays empty: the
// first send of a session deliberately opens a fresh thread.
func (r *Resolver) LoadHistory(ctx context.Context) error {
	msgs, err := r.gateway.GetChatHistory(ctx, r.sess.DeviceID(), historyLimit)
	if err != nil {
		r.seedIntro()
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(msgs) == 0 {
		r.transcript = []Entry{r.introEntry()}
		return nil
	}
	r.transcript = confirmed(msgs)
	return nil
}

// LoadConversation explicitly opens a past conversation: its id becomes the
// active thread id and its transcript replaces the displayed one.
func (r *Resolver) LoadConversation(ctx context.Context, conversationID string) error {
	msgs, err := r.gateway.GetConversationMessages(ctx, r.sess.DeviceID(), conversationID, historyLimit)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversationID = conversationID
	r.transcript = confirmed(msgs)
	r.state = StateIdle
	return nil
}

// NewConversation clears the current thread server-side, drops the active
// conversation id and reseeds the transcript with the intro.
func (r *Resolver) NewConversation(ctx context.Context) error {
	if err := r.gateway.ClearChatHistory(ctx, r.sess.DeviceID()); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversationID = ""
	r.transcript = []Entry{r.introEntry()}
	r.state = StateIdle
	return nil
}

// Send performs one exchange. The user's message is appended optimistically
// before the network call; the assistant's reply is appended only on
// success. On failure the user message is marked failed, stays in place,
// and a localized error line is appended as if from the assistant, with no
// automatic retry. When the response demands a subscription no assistant
// text is appended at all and the caller is signalled to route to the
// paywall.
//
// Concurrent sends are rejected while one is in flight.
func (r *Resolver) Send(ctx context.Context, text string) (*SendResult, error) {
	r.mu.Lock()
	if r.state == StateSending {
		r.mu.Unlock()
		return nil, common.ErrSendInProgress
	}
	r.state = StateSending
	userIdx := len(r.transcript)
	r.transcript = append(r.transcript, Entry{
		ChatMessage: models.ChatMessage{
			Role:           models.RoleUser,
			Content:        text,
			CreatedAt:      models.Timestamp{Time: time.Now().UTC()},
			ConversationID: r.conversationID,
		},
		Delivery: DeliveryPending,
	})
	req := models.ChatRequest{
		DeviceID:       r.sess.DeviceID(),
		Message:        text,
		Language:       r.sess.Language(),
		ConversationID: r.conversationID,
	}
	r.mu.Unlock()

	resp, err := r.gateway.SendChatMessage(ctx, req)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.transcript[userIdx].Delivery = DeliveryFailed
		r.transcript = append(r.transcript, Entry{
			ChatMessage: models.ChatMessage{
				Role:      models.RoleAssistant,
				Content:   i18n.T(r.sess.Language(), "chat_error"),
				CreatedAt: models.Timestamp{Time: time.Now().UTC()},
			},
			Delivery: DeliveryConfirmed,
		})
		r.state = StateIdle
		return nil, err
	}

	if resp.RequiresSubscription {
		// The server did not store or answer the message.
		r.transcript[userIdx].Delivery = DeliveryFailed
		r.state = StateRedirecting
		return &SendResult{RequiresSubscription: true}, nil
	}

	r.transcript[userIdx].Delivery = DeliveryConfirmed

	// Adopt the thread id assigned on the first exchange; afterwards the
	// held id is threaded through unchanged until the user starts a new
	// conversation or opens a different one.
	if r.conversationID == "" && resp.ConversationID != "" {
		r.conversationID = resp.ConversationID
	}
	r.transcript[userIdx].ConversationID = r.conversationID

	r.transcript = append(r.transcript, Entry{
		ChatMessage: models.ChatMessage{
			Role:           models.RoleAssistant,
			Content:        resp.Response,
			CreatedAt:      models.Timestamp{Time: time.Now().UTC()},
			ConversationID: r.conversationID,
		},
		Delivery: DeliveryConfirmed,
	})
	r.state = StateIdle

	return &SendResult{Reply: resp.Response, ConversationID: r.conversationID}, nil
}

// Transcript returns a copy of the displayed transcript.
func (r *Resolver) Transcript() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.transcript))
	copy(out, r.transcript)
	return out
}

// ConversationID returns the active thread id, "" when none is held.
func (r *Resolver) ConversationID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conversationID
}

// State returns the current send state.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Reset returns a redirecting screen to idle, e.g. after the user comes
// back from the subscription flow.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateSending {
		r.state = StateIdle
	}
}

func (r *Resolver) introEntry() Entry {
	return Entry{
		ChatMessage: models.ChatMessage{
			Role:      models.RoleAssistant,
			Content:   i18n.T(r.sess.Language(), "companion_intro"),
			CreatedAt: models.Timestamp{Time: time.Now().UTC()},
		},
		Delivery: DeliveryConfirmed,
	}
}

func (r *Resolver) seedIntro() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.transcript) == 0 {
		r.transcript = []Entry{r.introEntry()}
	}
}

func confirmed(msgs []models.ChatMessage) []Entry {
	out := make([]Entry, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Entry{ChatMessage: m, Delivery: DeliveryConfirmed})
	}
	return out
}
