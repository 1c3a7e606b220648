package app

import (
	"io"
	"time"
)

// Application wires the engine together for front ends: session store,
// staging area, assistant client, pipeline, and the active locale.
// All methods assume single-threaded invocation from the event loop.
type Application struct {
	Config   Config
	Logger   *Logger
	Store    *SessionStore
	Staging  *InputStagingArea
	Client   *AssistantClient
	Pipeline *RequestPipeline
	Language Language
}

func NewApplication(cfg Config, logOut io.Writer) *Application {
	logger := NewLogger(logOut)
	client := NewAssistantClient(cfg.Endpoint)
	if cfg.FormatType != "" {
		client.FormatType = cfg.FormatType
	}

	a := &Application{
		Config:   cfg,
		Logger:   logger,
		Store:    NewSessionStore(cfg.HistoryLimit),
		Staging:  NewInputStagingArea(cfg.AcceptedExtensions()),
		Client:   client,
		Language: ParseLanguage(cfg.Language),
	}
	a.Pipeline = NewRequestPipeline(a.Store, a.Staging, a.Client, logger, func() Strings {
		return Lookup(a.Language)
	})
	return a
}

// Strings returns the active locale's string table.
func (a *Application) Strings() Strings { return Lookup(a.Language) }

// CycleLanguage advances to the next supported locale.
func (a *Application) CycleLanguage() {
	langs := Languages()
	for i, l := range langs {
		if l == a.Language {
			a.Language = langs[(i+1)%len(langs)]
			return
		}
	}
	a.Language = langs[0]
}

// StartNewChat archives the current conversation and begins a fresh
// one, discarding the draft. No-op while a request is in flight.
func (a *Application) StartNewChat() {
	if a.Pipeline.Busy() {
		return
	}
	a.Store.StartNewChat()
	a.Staging.SetText("")
	a.Staging.Detach()
	a.Logger.Info("started new chat", Fields{"conversation": a.Store.ActiveID()})
}

// ClearChat resets the active messages. No-op while busy.
func (a *Application) ClearChat() {
	if a.Pipeline.Busy() {
		return
	}
	a.Store.ClearChat()
}

// LoadConversation switches to an archived conversation. Unknown ids
// are ignored, and nothing happens while busy.
func (a *Application) LoadConversation(id string) {
	if a.Pipeline.Busy() {
		return
	}
	if err := a.Store.Load(id); err != nil {
		a.Logger.Error("load conversation", Fields{"id": id, "error": err.Error()})
	}
}

// Export writes the active transcript through the configured download
// directory and returns the artifact filename.
func (a *Application) Export() (string, error) {
	name, err := ExportChat(a.Store, FileDownloader{Dir: a.Config.ExportDir}, time.Now())
	if err != nil {
		a.Logger.Error("export chat", Fields{"error": err.Error()})
		return "", err
	}
	a.Logger.Info("exported chat", Fields{"file": name})
	return name, nil
}
