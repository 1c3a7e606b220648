package app

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrBusy            = errors.New("a request is already in flight")
	ErrEmptySubmission = errors.New("nothing to submit")
)

const attachmentMarker = "📎"

// RequestPipeline turns the staged draft into one dispatched exchange
// against the assistant endpoint. It has exactly two states, idle and
// busy, so at most one submission is ever in flight. The busy flag
// also gates SessionStore lifecycle operations at the call sites.
//
// Event front ends drive the pipeline in three phases so that all
// state mutation stays on the event loop: Accept (consume draft,
// append user turns, go busy), Dispatch (network only, may run on
// another goroutine), Complete (append reply or error turn, go idle).
// Submit runs all three synchronously.
type RequestPipeline struct {
	store   *SessionStore
	staging *InputStagingArea
	client  *AssistantClient
	logger  *Logger
	strings func() Strings
	busy    bool
}

func NewRequestPipeline(store *SessionStore, staging *InputStagingArea, client *AssistantClient, logger *Logger, strings func() Strings) *RequestPipeline {
	return &RequestPipeline{
		store:   store,
		staging: staging,
		client:  client,
		logger:  logger,
		strings: strings,
	}
}

func (p *RequestPipeline) Busy() bool { return p.busy }

// Accept validates the staged draft, snapshots and clears it, appends
// the user turn(s), and moves the pipeline to busy. Non-empty text and
// an attachment each become their own user message; they are never
// merged. The caller must follow up with Dispatch and Complete.
func (p *RequestPipeline) Accept() (Draft, error) {
	if p.busy {
		return Draft{}, ErrBusy
	}
	if !p.staging.CanSubmit(p.busy) {
		return Draft{}, ErrEmptySubmission
	}

	draft := p.staging.Snapshot()
	if draft.Text != "" {
		p.store.Append(Message{Role: RoleUser, Content: draft.Text})
	}
	if draft.File != nil {
		p.store.Append(Message{Role: RoleUser, Content: attachmentMarker + " " + draft.File.Name})
	}
	p.busy = true
	p.logger.Info("submission accepted", Fields{
		"conversation": p.store.ActiveID(),
		"has_file":     draft.File != nil,
		"chars":        utf8.RuneCountInString(draft.Text),
	})
	return draft, nil
}

// Dispatch performs the network exchange for an accepted draft. It
// mutates no session state and is safe to run off the event loop.
func (p *RequestPipeline) Dispatch(ctx context.Context, draft Draft) (string, error) {
	return p.client.Send(ctx, draft.Text, draft.File)
}

// Complete appends the assistant turn (or a localized error turn) and
// returns the pipeline to idle regardless of outcome. Transport
// failures degrade to a visible chat message; they are never thrown
// up to crash the session.
func (p *RequestPipeline) Complete(reply string, err error) {
	defer func() { p.busy = false }()

	if err != nil {
		t := p.strings()
		p.logger.Error("assistant request failed", Fields{"error": err.Error()})
		p.store.Append(Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("❌ %s: %s", t.Error, err.Error()),
		})
		return
	}
	p.store.Append(Message{Role: RoleAssistant, Content: reply})
}

// Submit runs the full protocol synchronously: accept, dispatch,
// complete. It returns an error only when the submission is rejected
// before dispatch; request failures surface as chat messages.
func (p *RequestPipeline) Submit(ctx context.Context) error {
	draft, err := p.Accept()
	if err != nil {
		return err
	}
	reply, sendErr := p.Dispatch(ctx, draft)
	p.Complete(reply, sendErr)
	return nil
}
