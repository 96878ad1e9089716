package jira

import "errors"

var (
	// ErrNotFound indicates the ticket does not exist on the server.
	ErrNotFound = errors.New("jira issue not found")

	// ErrTransport indicates a request failed: unreachable server,
	// non-success status, or unparseable body.
	ErrTransport = errors.New("jira request failed")
)
