package tui

import (
	"github.com/apolonotes/apolo-console/internal/identity"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/apolonotes/apolo-console/models"
)

type gateChangedMsg struct {
	state     identity.GateState
	principal *models.Principal
}

type signInDoneMsg struct {
	err error
}

type signUpDoneMsg struct {
	err error
}

type signOutDoneMsg struct {
	err error
}

type federatedStartedMsg struct {
	session identity.FederatedSession
	err     error
}

// federatedTickMsg fires when the next federated poll is due.
type federatedTickMsg struct {
	session identity.FederatedSession
}

type federatedPolledMsg struct {
	session identity.FederatedSession
	err     error
}

type notesLoadedMsg struct {
	page models.NotesPage
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type eventsLoadedMsg struct {
	events []models.Event
	err    error
}

type eventSavedMsg struct {
	event models.Event
	err   error
}

type eventDeletedMsg struct {
	err error
}

type tagsLoadedMsg struct {
	tags []models.Tag
	err  error
}

type tagSavedMsg struct {
	err error
}

type tagDeletedMsg struct {
	err error
}

type toastMsg struct {
	message  string
	severity notify.Severity
}

type toastExpiredMsg struct {
	seq int
}

type copiedMsg struct{}

type clearStatusMsg struct{}
