package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// Attachment is a staged file pending submission.
type Attachment struct {
	Name string
	Data []byte
}

// Draft is the snapshot the pipeline takes when it accepts a
// submission.
type Draft struct {
	Text string
	File *Attachment
}

// InputStagingArea holds the not-yet-sent draft: typed text plus at
// most one pending file. The staging slot is only cleared through
// Snapshot, at the moment the pipeline accepts a submission, so a
// keystroke during a slow request can never vanish.
type InputStagingArea struct {
	text   string
	file   *Attachment
	accept []string
}

// NewInputStagingArea builds a staging area restricted to the given
// file extensions (e.g. ".pdf"). An empty list accepts everything.
func NewInputStagingArea(acceptExts []string) *InputStagingArea {
	exts := make([]string, 0, len(acceptExts))
	for _, e := range acceptExts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return &InputStagingArea{accept: exts}
}

func (a *InputStagingArea) SetText(text string) { a.text = text }

func (a *InputStagingArea) Text() string { return a.text }

func (a *InputStagingArea) File() *Attachment { return a.file }

// Attach stages a file for the next submission, replacing any pending
// one. Files outside the accept-list are rejected.
func (a *InputStagingArea) Attach(name string, data []byte) error {
	if !a.accepts(name) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(name))
	}
	a.file = &Attachment{Name: name, Data: data}
	return nil
}

func (a *InputStagingArea) accepts(name string) bool {
	if len(a.accept) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range a.accept {
		if ext == e {
			return true
		}
	}
	return false
}

// Detach drops a pending file without touching the text.
func (a *InputStagingArea) Detach() { a.file = nil }

// CanSubmit reports whether the draft is dispatchable: some non-blank
// text or a pending file, and no request in flight.
func (a *InputStagingArea) CanSubmit(busy bool) bool {
	if busy {
		return false
	}
	return strings.TrimSpace(a.text) != "" || a.file != nil
}

// Snapshot returns the current draft and clears the staging slot in a
// single step.
func (a *InputStagingArea) Snapshot() Draft {
	d := Draft{Text: strings.TrimSpace(a.text), File: a.file}
	a.text = ""
	a.file = nil
	return d
}
