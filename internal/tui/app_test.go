package tui

import (
	"context"
	"testing"

	"github.com/apolonotes/apolo-console/internal/identity"
	"github.com/apolonotes/apolo-console/internal/mock"
	"github.com/apolonotes/apolo-console/internal/resource"
	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	notes  *mock.MockNotesService
	events *mock.MockEventsService
	tags   *mock.MockTagsService
}

// newTestApp builds an appModel over strict service mocks. Any request a test
// does not expect fails the test.
func newTestApp(t *testing.T) (appModel, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := appMocks{
		notes:  mock.NewMockNotesService(ctrl),
		events: mock.NewMockEventsService(ctrl),
		tags:   mock.NewMockTagsService(ctrl),
	}
	stores := resource.NewStores(&service.Services{
		Notes:  mocks.notes,
		Events: mocks.events,
		Tags:   mocks.tags,
	})
	return newAppModel(context.Background(), stores, nil), mocks
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestNoteFormSubmit_InvalidBlocksRequest(t *testing.T) {
	m, _ := newTestApp(t)
	m.currentScreen = screenNoteForm
	m.noteForm = newNoteFormModel(nil)
	m.noteForm.title.SetValue("ab")

	updated, cmd := m.Update(keyPress(tea.KeyCtrlS))

	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.Equal(t, screenNoteForm, app.currentScreen)
	assert.Equal(t, "Title must be at least 3 characters", app.noteForm.violations["title"])
	assert.False(t, app.noteForm.submitting)
}

func TestNoteFormSubmit_ValidCreatesOnce(t *testing.T) {
	m, mocks := newTestApp(t)
	m.currentScreen = screenNoteForm
	m.noteForm = newNoteFormModel(nil)
	m.noteForm.title.SetValue("Groceries")
	m.noteForm.content.SetValue("milk, eggs")

	want := models.CreateNoteRequest{Title: "Groceries", Content: "milk, eggs", TagIDs: []int64{}}
	mocks.notes.EXPECT().
		Create(gomock.Any(), want).
		Return(models.Note{ID: 7, Title: "Groceries"}, nil)

	updated, cmd := m.Update(keyPress(tea.KeyCtrlS))

	app := updated.(appModel)
	require.NotNil(t, cmd)
	assert.True(t, app.noteForm.submitting)

	saved, ok := cmd().(noteSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, int64(7), saved.note.ID)
}

func TestEventFormSubmit_EndBeforeStartBlocked(t *testing.T) {
	m, _ := newTestApp(t)
	m.currentScreen = screenEventForm
	m.eventForm = newEventFormModel(nil)
	m.eventForm.inputs[0].SetValue("Standup")
	m.eventForm.inputs[2].SetValue("2026-09-01 10:00")
	m.eventForm.inputs[3].SetValue("2026-09-01 09:00")

	updated, cmd := m.Update(keyPress(tea.KeyEnter))

	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "End must be after start", app.eventForm.violations["endAt"])
}

func TestTagInput_EmptyNameBlocked(t *testing.T) {
	m, _ := newTestApp(t)
	m.currentScreen = screenTags
	m.tags.openInput(nil)
	m.tags.input.SetValue("   ")

	updated, cmd := m.Update(keyPress(tea.KeyEnter))

	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "Name is required", app.tags.violation)
	assert.True(t, app.tags.inputOpen)
}

func TestLoginSubmit_InvalidBlocksProviderCall(t *testing.T) {
	m, _ := newTestApp(t)
	m.currentScreen = screenLogin
	m.login.inputs[0].SetValue("not-an-email")
	m.login.inputs[1].SetValue("hunter42")

	updated, cmd := m.Update(keyPress(tea.KeyEnter))

	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "Enter a valid email address", app.login.violations["email"])
	assert.False(t, app.login.submitting)
}

func TestLoginSubmit_ValidSignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	m := newAppModel(context.Background(), resource.NewStores(&service.Services{}), provider)
	m.currentScreen = screenLogin
	m.login.inputs[0].SetValue("dev@example.com")
	m.login.inputs[1].SetValue("hunter42")

	provider.EXPECT().
		SignIn(gomock.Any(), "dev@example.com", "hunter42").
		Return(models.Principal{Email: "dev@example.com"}, nil)

	updated, cmd := m.Update(keyPress(tea.KeyEnter))

	app := updated.(appModel)
	require.NotNil(t, cmd)
	assert.True(t, app.login.submitting)

	done, ok := cmd().(signInDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
}

func TestFederatedSignIn_PollsUntilComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	m := newAppModel(context.Background(), resource.NewStores(&service.Services{}), provider)
	m.currentScreen = screenLogin

	session := identity.FederatedSession{VerificationURL: "https://id.example.com/activate", DeviceCode: "dev-1"}
	provider.EXPECT().BeginFederated(gomock.Any()).Return(session, nil)
	first := provider.EXPECT().
		PollFederated(gomock.Any(), session).
		Return(models.Principal{}, identity.ErrFederatedPending)
	provider.EXPECT().
		PollFederated(gomock.Any(), session).
		After(first).
		Return(models.Principal{Email: "dev@example.com"}, nil)

	updated, cmd := m.Update(keyPress(tea.KeyCtrlO))
	require.NotNil(t, cmd)
	started, ok := cmd().(federatedStartedMsg)
	require.True(t, ok)

	updated, cmd = updated.(appModel).Update(started)
	app := updated.(appModel)
	assert.True(t, app.login.federated)
	assert.Equal(t, session.VerificationURL, app.login.verificationURL)
	require.NotNil(t, cmd, "a poll tick is scheduled")

	// Drive the polls directly instead of waiting on the tick.
	updated, cmd = app.Update(federatedTickMsg{session: session})
	polled := cmd().(federatedPolledMsg)
	updated, cmd = updated.(appModel).Update(polled)
	app = updated.(appModel)
	assert.True(t, app.login.federated, "pending keeps the flow alive")
	require.NotNil(t, cmd)

	updated, cmd = app.Update(federatedTickMsg{session: session})
	polled = cmd().(federatedPolledMsg)
	updated, _ = updated.(appModel).Update(polled)
	app = updated.(appModel)
	assert.False(t, app.login.federated)
}

func TestGateRouting(t *testing.T) {
	m, _ := newTestApp(t)

	updated, cmd := m.Update(gateChangedMsg{
		state:     identity.StateAuthenticated,
		principal: &models.Principal{Email: "dev@example.com"},
	})
	app := updated.(appModel)
	assert.Equal(t, screenDashboard, app.currentScreen)
	assert.Equal(t, "dev@example.com", app.dashboard.email)
	assert.NotNil(t, cmd, "entering the dashboard schedules the initial loads")

	updated, _ = app.Update(gateChangedMsg{state: identity.StateUnauthenticated})
	app = updated.(appModel)
	assert.Equal(t, screenLogin, app.currentScreen)
}

func TestConfirmOverlay_SwallowsKeysUntilAnswered(t *testing.T) {
	m, _ := newTestApp(t)
	m.currentScreen = screenNotesList
	m.notesList.loading = false
	m.notesList.page = models.NotesPage{Content: []models.Note{{ID: 1, Title: "keep me"}}, TotalPages: 1}
	m.confirm.ask("keep me", func() tea.Msg { return noteDeletedMsg{} })

	// Screen keys are ignored while the dialog is up.
	updated, cmd := m.Update(keyPress(tea.KeyEnter))
	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.True(t, app.confirm.active)
	assert.Equal(t, screenNotesList, app.currentScreen)

	updated, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	app = updated.(appModel)
	require.NotNil(t, cmd)
	assert.False(t, app.confirm.active)
	_, ok := cmd().(noteDeletedMsg)
	assert.True(t, ok)
}
