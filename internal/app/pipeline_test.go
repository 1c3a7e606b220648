package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestPipeline(endpoint string) (*RequestPipeline, *SessionStore, *InputStagingArea) {
	store := NewSessionStore(0)
	staging := NewInputStagingArea(nil)
	client := NewAssistantClient(endpoint)
	p := NewRequestPipeline(store, staging, client, NewLogger(io.Discard), func() Strings {
		return Lookup(LangEnglish)
	})
	return p, store, staging
}

func jsonBackend(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitAppendsUserTurnBeforeReply(t *testing.T) {
	srv := jsonBackend(t, `{"reply":"hi back"}`)
	p, store, staging := newTestPipeline(srv.URL)

	staging.SetText("Hello")
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	msgs := store.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected seed + user + assistant, got %d messages", len(msgs))
	}
	if msgs[1].Role != RoleUser || msgs[1].Content != "Hello" {
		t.Fatalf("user turn = %#v", msgs[1])
	}
	if msgs[2].Role != RoleAssistant || msgs[2].Content != "hi back" {
		t.Fatalf("assistant turn = %#v", msgs[2])
	}
	if p.Busy() {
		t.Fatalf("pipeline should be idle after completion")
	}
}

func TestSubmitFileOnlyProducesSingleAttachmentTurn(t *testing.T) {
	srv := jsonBackend(t, `{"reply":"got it"}`)
	p, store, staging := newTestPipeline(srv.URL)

	if err := staging.Attach("resume.pdf", []byte("%PDF")); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var userTurns []Message
	for _, m := range store.Messages() {
		if m.Role == RoleUser {
			userTurns = append(userTurns, m)
		}
	}
	if len(userTurns) != 1 {
		t.Fatalf("expected exactly one user turn, got %d", len(userTurns))
	}
	if !strings.Contains(userTurns[0].Content, "resume.pdf") {
		t.Fatalf("attachment turn should embed the filename: %q", userTurns[0].Content)
	}
	if strings.TrimSpace(userTurns[0].Content) == "" {
		t.Fatalf("no empty-text user turn allowed")
	}
}

func TestSubmitTextAndFileAreSeparateTurns(t *testing.T) {
	srv := jsonBackend(t, `{"reply":"ok"}`)
	p, store, staging := newTestPipeline(srv.URL)

	staging.SetText("please review")
	if err := staging.Attach("cv.docx", []byte("doc")); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	msgs := store.Messages()
	if len(msgs) != 4 {
		t.Fatalf("expected seed + text + attachment + reply, got %d", len(msgs))
	}
	if msgs[1].Content != "please review" {
		t.Fatalf("text turn = %q", msgs[1].Content)
	}
	if !strings.Contains(msgs[2].Content, "cv.docx") {
		t.Fatalf("attachment turn = %q", msgs[2].Content)
	}
}

func TestSubmitRejectsEmptyDraft(t *testing.T) {
	p, store, _ := newTestPipeline("mock://")
	before := len(store.Messages())

	if err := p.Submit(context.Background()); !errors.Is(err, ErrEmptySubmission) {
		t.Fatalf("expected ErrEmptySubmission, got %v", err)
	}
	if len(store.Messages()) != before {
		t.Fatalf("rejected submission must not append messages")
	}
}

func TestAcceptBlocksSecondSubmissionWhileBusy(t *testing.T) {
	p, _, staging := newTestPipeline("mock://")

	staging.SetText("first")
	if _, err := p.Accept(); err != nil {
		t.Fatalf("accept: %v", err)
	}
	staging.SetText("second")
	if _, err := p.Accept(); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	// The rejected draft must survive for the next attempt.
	if staging.Text() != "second" {
		t.Fatalf("rejected draft vanished: %q", staging.Text())
	}
	p.Complete("done", nil)
	if p.Busy() {
		t.Fatalf("pipeline should be idle after Complete")
	}
}

func TestResponseAliasResolution(t *testing.T) {
	srv := jsonBackend(t, `{"response":"Hi there"}`)
	p, store, staging := newTestPipeline(srv.URL)

	staging.SetText("hello")
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	msgs := store.Messages()
	last := msgs[len(msgs)-1]
	if last.Content != "Hi there" {
		t.Fatalf("reply = %q, want %q", last.Content, "Hi there")
	}
}

func TestEmptyResponseBodyYieldsFallbackApology(t *testing.T) {
	srv := jsonBackend(t, `{}`)
	p, store, staging := newTestPipeline(srv.URL)

	staging.SetText("hello")
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	msgs := store.Messages()
	last := msgs[len(msgs)-1]
	if last.Content != FallbackReply {
		t.Fatalf("reply = %q, want fallback apology", last.Content)
	}
}

func TestTransportErrorBecomesLocalizedChatMessage(t *testing.T) {
	p, store, staging := newTestPipeline("mock://")

	staging.SetText("hello")
	draft, err := p.Accept()
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	_ = draft
	p.Complete("", errors.New("timeout"))

	msgs := store.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != RoleAssistant {
		t.Fatalf("error turn role = %s", last.Role)
	}
	want := "❌ Something went wrong: timeout"
	if last.Content != want {
		t.Fatalf("error turn = %q, want %q", last.Content, want)
	}
	if p.Busy() {
		t.Fatalf("pipeline must return to idle after failure")
	}
}

func TestNon2xxStatusBecomesErrorTurn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()
	p, store, staging := newTestPipeline(srv.URL)

	staging.SetText("hello")
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	msgs := store.Messages()
	last := msgs[len(msgs)-1]
	if !strings.HasPrefix(last.Content, "❌ Something went wrong: ") {
		t.Fatalf("expected localized error template, got %q", last.Content)
	}
	if !strings.Contains(last.Content, "502") {
		t.Fatalf("error turn should embed the failure text: %q", last.Content)
	}
	if p.Busy() {
		t.Fatalf("pipeline must be idle after non-2xx")
	}
}

func TestAcceptLogsRuneCountNotBytes(t *testing.T) {
	var buf bytes.Buffer
	store := NewSessionStore(0)
	staging := NewInputStagingArea(nil)
	p := NewRequestPipeline(store, staging, NewAssistantClient("mock://"), NewLogger(&buf), func() Strings {
		return Lookup(LangEnglish)
	})

	staging.SetText("héllo") // 5 characters, 6 bytes
	if _, err := p.Accept(); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !strings.Contains(buf.String(), `"chars":5`) {
		t.Fatalf("expected chars=5 in log event: %s", buf.String())
	}
}

func TestSubmitClearsStagingOnAcceptance(t *testing.T) {
	srv := jsonBackend(t, `{"reply":"ok"}`)
	p, _, staging := newTestPipeline(srv.URL)

	staging.SetText("hello")
	if err := p.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if staging.Text() != "" || staging.File() != nil {
		t.Fatalf("staging should be cleared at acceptance")
	}
}
