// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session orchestrates one chat turn: dispatch the query to the
// selected backend, turn the outcome into an assistant reply, and keep
// the transcript and the live result set.
package session

import (
	"context"
	"fmt"

	"github.com/pdiddy/cgspace-agent/internal/search"
	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// BackendKind selects the search source for a turn.
type BackendKind string

const (
	BackendLocal  BackendKind = "local"
	BackendRemote BackendKind = "remote"
)

// Controller holds one user session's state. Turns are strictly
// sequential: a turn's outcome is fully determined before the next one
// may begin, so no locking is needed.
type Controller struct {
	local  search.Backend
	remote search.Backend

	backend    BackendKind
	transcript []types.Message
	current    []types.Record
}

// NewController builds a session over the two backends, starting on kind.
func NewController(local, remote search.Backend, kind BackendKind) *Controller {
	if kind == "" {
		kind = BackendLocal
	}
	return &Controller{local: local, remote: remote, backend: kind}
}

// SetBackend switches the search source for subsequent turns.
func (c *Controller) SetBackend(kind BackendKind) { c.backend = kind }

// Backend returns the currently selected source.
func (c *Controller) Backend() BackendKind { return c.backend }

// Transcript returns the append-only message history.
func (c *Controller) Transcript() []types.Message { return c.transcript }

// Current returns the live result set from the last successful search.
func (c *Controller) Current() []types.Record { return c.current }

// ProcessTurn runs one user turn and returns the assistant's reply. A
// successful search replaces the current result set wholesale; a failed
// remote call leaves it untouched and the reply names the failure kind
// with a suggestion to switch to the local backend. The reply and the
// user query are both appended to the transcript.
func (c *Controller) ProcessTurn(ctx context.Context, query string) string {
	c.transcript = append(c.transcript, types.Message{Role: types.RoleUser, Content: query})

	backend := c.local
	if c.backend == BackendRemote {
		backend = c.remote
	}

	reply := c.runSearch(ctx, backend, query)
	c.transcript = append(c.transcript, types.Message{Role: types.RoleAssistant, Content: reply})
	return reply
}

func (c *Controller) runSearch(ctx context.Context, backend search.Backend, query string) string {
	results, err := backend.Search(ctx, query)
	if err != nil {
		// All-or-nothing per turn: the previous result set stays on display.
		return fmt.Sprintf(
			"The %s search failed (%s error: %v). "+
				"The previously shown results are unchanged; you can switch to the local backend with /backend local.",
			backend.Name(), search.ErrorKind(err), err)
	}

	c.current = results
	return search.Summarize(results, sourceLabel(backend.Name()))
}

func sourceLabel(backendName string) string {
	switch backendName {
	case "local":
		return "the local CGSpace subset"
	default:
		return "the CGSpace repository"
	}
}
