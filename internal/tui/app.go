package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apolonotes/apolo-console/internal/identity"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/apolonotes/apolo-console/internal/resource"
	"github.com/apolonotes/apolo-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const notesPageSize = 20

type screen int

const (
	screenChecking screen = iota
	screenLogin
	screenSignup
	screenDashboard
	screenNotesList
	screenNoteForm
	screenNoteDetail
	screenEventsList
	screenEventForm
	screenEventDetail
	screenTags
)

type appModel struct {
	ctx      context.Context
	stores   *resource.Stores
	provider identity.Provider

	currentScreen screen

	login       loginModel
	signup      signupModel
	dashboard   dashboardModel
	notesList   notesListModel
	noteForm    noteFormModel
	noteDetail  noteDetailModel
	eventsList  eventsListModel
	eventForm   eventFormModel
	eventDetail eventDetailModel
	tags        tagsModel

	toast   toastModel
	confirm confirmModel

	// notesPage and notesArchived drive the query params of the next notes
	// fetch.
	notesPage     int
	notesArchived bool
}

func newAppModel(ctx context.Context, stores *resource.Stores, provider identity.Provider) appModel {
	return appModel{
		ctx:           ctx,
		stores:        stores,
		provider:      provider,
		currentScreen: screenChecking,
		login:         newLoginModel(),
		signup:        newSignupModel(),
		dashboard:     newDashboardModel(),
		notesList:     newNotesListModel(),
		eventsList:    newEventsListModel(),
		tags:          newTagsModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.confirm.active {
			return m.updateConfirm(msg)
		}
	case gateChangedMsg:
		return m.applyGate(msg)
	case toastMsg:
		return m, m.toast.show(msg.message, msg.severity)
	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil
	case signInDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			return m, m.toast.show(msg.err.Error(), notify.SeverityError)
		}
		// The gate transition routes to the dashboard.
		return m, nil
	case signUpDoneMsg:
		m.signup.submitting = false
		if msg.err != nil {
			return m, m.toast.show(msg.err.Error(), notify.SeverityError)
		}
		return m, nil
	case signOutDoneMsg:
		if msg.err != nil {
			return m, m.toast.show(msg.err.Error(), notify.SeverityError)
		}
		return m, nil
	case federatedStartedMsg:
		if msg.err != nil {
			return m, m.toast.show(msg.err.Error(), notify.SeverityError)
		}
		m.login.federated = true
		m.login.verificationURL = msg.session.VerificationURL
		return m, cmdFederatedTick(msg.session)
	case federatedTickMsg:
		if !m.login.federated {
			return m, nil
		}
		return m, m.cmdPollFederated(msg.session)
	case federatedPolledMsg:
		return m.applyFederatedPoll(msg)
	case notesLoadedMsg:
		return m.applyNotesLoaded(msg)
	case eventsLoadedMsg:
		return m.applyEventsLoaded(msg)
	case tagsLoadedMsg:
		return m.applyTagsLoaded(msg)
	case noteSavedMsg:
		m.noteForm.submitting = false
		if msg.err != nil {
			return m, nil
		}
		m.currentScreen = screenNotesList
		m.notesList.status = "Saved"
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())
	case noteDeletedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.currentScreen = screenNotesList
		m.notesList.status = "Deleted"
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())
	case eventSavedMsg:
		m.eventForm.submitting = false
		if msg.err != nil {
			return m, nil
		}
		m.currentScreen = screenEventsList
		m.eventsList.status = "Saved"
		return m, tea.Batch(m.cmdLoadEvents(), cmdClearStatus())
	case eventDeletedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.currentScreen = screenEventsList
		m.eventsList.status = "Deleted"
		return m, tea.Batch(m.cmdLoadEvents(), cmdClearStatus())
	case tagSavedMsg:
		m.tags.submitting = false
		if msg.err != nil {
			return m, nil
		}
		m.tags.closeInput()
		m.tags.status = "Saved"
		return m, tea.Batch(m.cmdLoadTags(), cmdClearStatus())
	case tagDeletedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.tags.status = "Deleted"
		return m, tea.Batch(m.cmdLoadTags(), cmdClearStatus())
	case copiedMsg:
		m.noteDetail.status = "Copied"
		m.eventDetail.status = "Copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.noteDetail.status = ""
		m.eventDetail.status = ""
		m.notesList.status = ""
		m.eventsList.status = ""
		m.tags.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenNotesList:
		return m.updateNotesList(msg)
	case screenNoteForm:
		return m.updateNoteForm(msg)
	case screenNoteDetail:
		return m.updateNoteDetail(msg)
	case screenEventsList:
		return m.updateEventsList(msg)
	case screenEventForm:
		return m.updateEventForm(msg)
	case screenEventDetail:
		return m.updateEventDetail(msg)
	case screenTags:
		return m.updateTags(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenChecking:
		body = titleStyle.Render("ApoloNotes") + "\n\nChecking session...\n"
	case screenLogin:
		body = m.login.View()
	case screenSignup:
		body = m.signup.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenNotesList:
		body = m.notesList.View()
	case screenNoteForm:
		body = m.noteForm.View()
	case screenNoteDetail:
		body = m.noteDetail.View()
	case screenEventsList:
		body = m.eventsList.View()
	case screenEventForm:
		body = m.eventForm.View()
	case screenEventDetail:
		body = m.eventDetail.View()
	case screenTags:
		body = m.tags.View()
	}

	if m.confirm.active {
		body += "\n\n" + m.confirm.View()
	}
	if toast := m.toast.View(); toast != "" {
		body += "\n\n" + toast
	}
	return appStyle.Render(body)
}

// ── gate routing ──

func (m appModel) applyGate(msg gateChangedMsg) (tea.Model, tea.Cmd) {
	switch msg.state {
	case identity.StateAuthenticated:
		// Fresh session, fresh screens.
		m.dashboard = newDashboardModel()
		m.notesList = newNotesListModel()
		m.eventsList = newEventsListModel()
		m.tags = newTagsModel()
		m.notesPage = 0
		m.notesArchived = false
		if msg.principal != nil {
			m.dashboard.email = msg.principal.Email
		}
		m.currentScreen = screenDashboard
		return m, tea.Batch(m.cmdLoadNotes(), m.cmdLoadEvents(), m.cmdLoadTags())
	case identity.StateUnauthenticated:
		m.login = newLoginModel()
		m.signup = newSignupModel()
		m.currentScreen = screenLogin
		return m, nil
	default:
		m.currentScreen = screenChecking
		return m, nil
	}
}

// ── load results ──

func (m appModel) applyNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	m.notesList.loading = false
	m.dashboard.loading = false
	if msg.err != nil {
		return m, nil
	}
	m.notesList.page = msg.page
	m.notesList.clampCursor()
	m.notesPage = msg.page.Number
	if !m.notesArchived {
		m.dashboard.notes = msg.page
	}
	return m, nil
}

func (m appModel) applyEventsLoaded(msg eventsLoadedMsg) (tea.Model, tea.Cmd) {
	m.eventsList.loading = false
	m.dashboard.loading = false
	if msg.err != nil {
		return m, nil
	}
	m.eventsList.events = msg.events
	m.eventsList.clampCursor(time.Now())
	m.dashboard.events.events = msg.events
	return m, nil
}

func (m appModel) applyTagsLoaded(msg tagsLoadedMsg) (tea.Model, tea.Cmd) {
	m.tags.loading = false
	if msg.err != nil {
		return m, nil
	}
	m.tags.tags = msg.tags
	m.tags.clampCursor()
	m.dashboard.tags = msg.tags
	return m, nil
}

// ── overlays ──

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		cmd := m.confirm.onYes
		m.confirm.dismiss()
		return m, cmd
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm.dismiss()
	}
	return m, nil
}

// ── auth screens ──

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login = focusLogin(m.login, m.login.focus+1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusLogin(m.login, m.login.focus-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			values := m.login.values()
			m.login.violations = loginSchema.Validate(values)
			if len(m.login.violations) > 0 {
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdSignIn(values["email"], values["password"])
		}
		// Chords rather than plain letters: the focused input owns letters.
		switch keyMsg.String() {
		case "ctrl+n":
			m.currentScreen = screenSignup
			return m, nil
		case "ctrl+o":
			if m.login.federated {
				return m, nil
			}
			return m, m.cmdBeginFederated()
		case "esc":
			m.login.federated = false
			m.login.verificationURL = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenLogin
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signup = focusSignup(m.signup, m.signup.focus+1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signup = focusSignup(m.signup, m.signup.focus-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signup.submitting {
				return m, nil
			}
			values := m.signup.values()
			m.signup.violations = signupSchema.Validate(values)
			if len(m.signup.violations) > 0 {
				return m, nil
			}
			m.signup.submitting = true
			return m, m.cmdSignUp(values["email"], values["password"])
		}
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

// ── protected screens ──

// handleNav applies the shared section-switch and sign-out keys of the
// protected list screens. The second return value reports whether the key
// was consumed.
func (m appModel) handleNav(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(keyMsg, keys.goDashboard):
		m.currentScreen = screenDashboard
		return m, nil, true
	case key.Matches(keyMsg, keys.goNotes):
		m.currentScreen = screenNotesList
		return m, nil, true
	case key.Matches(keyMsg, keys.goEvents):
		m.currentScreen = screenEventsList
		return m, nil, true
	case key.Matches(keyMsg, keys.goTags):
		m.currentScreen = screenTags
		return m, nil, true
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdSignOut(), true
	}
	return m, nil, false
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, consumed := m.handleNav(keyMsg); consumed {
		return next, cmd
	}
	if key.Matches(keyMsg, keys.refresh) {
		m.dashboard.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), m.cmdLoadEvents(), m.cmdLoadTags())
	}
	return m, nil
}

func (m appModel) updateNotesList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.notesList.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.notesList.searching = false
			m.notesList.search.Blur()
			m.notesList.search.SetValue("")
			m.notesList.clampCursor()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.notesList.searching = false
			m.notesList.search.Blur()
			m.notesList.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.notesList.search, cmd = m.notesList.search.Update(msg)
		m.notesList.clampCursor()
		return m, cmd
	}

	if next, cmd, consumed := m.handleNav(keyMsg); consumed {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.notesList.idx > 0 {
			m.notesList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.notesList.idx < len(m.notesList.visible())-1 {
			m.notesList.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.notesList.searching = true
		m.notesList.search.Focus()
	case key.Matches(keyMsg, keys.archived):
		m.notesArchived = !m.notesArchived
		m.notesPage = 0
		m.notesList.showArchived = m.notesArchived
		m.notesList.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.left):
		if m.notesPage > 0 {
			m.notesPage--
			m.notesList.loading = true
			return m, m.cmdLoadNotes()
		}
	case key.Matches(keyMsg, keys.right):
		if m.notesPage < m.notesList.page.TotalPages-1 {
			m.notesPage++
			m.notesList.loading = true
			return m, m.cmdLoadNotes()
		}
	case key.Matches(keyMsg, keys.refresh):
		m.notesList.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.newItem):
		m.noteForm = newNoteFormModel(nil)
		m.currentScreen = screenNoteForm
	case key.Matches(keyMsg, keys.enter):
		if note, ok := m.notesList.current(); ok {
			m.noteDetail = noteDetailModel{note: note}
			m.currentScreen = screenNoteDetail
		}
	case key.Matches(keyMsg, keys.edit):
		if note, ok := m.notesList.current(); ok {
			m.noteForm = newNoteFormModel(&note)
			m.currentScreen = screenNoteForm
		}
	case key.Matches(keyMsg, keys.delete):
		if note, ok := m.notesList.current(); ok {
			m.confirm.ask(note.Title, m.cmdDeleteNote(note.ID))
		}
	}

	return m, nil
}

func (m appModel) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenNotesList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.noteForm.setFocus(m.noteForm.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.noteForm.setFocus(m.noteForm.focus - 1)
			return m, nil
		}
		switch keyMsg.String() {
		case "ctrl+a":
			if m.noteForm.editing {
				m.noteForm.archived = !m.noteForm.archived
			}
			return m, nil
		case "ctrl+s":
			if cmd := m.submitNoteForm(); cmd != nil {
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.noteForm.focus {
	case 0:
		m.noteForm.title, cmd = m.noteForm.title.Update(msg)
	case 1:
		m.noteForm.content, cmd = m.noteForm.content.Update(msg)
	case 2:
		m.noteForm.tagIDs, cmd = m.noteForm.tagIDs.Update(msg)
	}
	return m, cmd
}

// submitNoteForm validates and, when clean, returns the save command.
// Violations keep the form on screen with per-field messages and no request
// is issued.
func (m *appModel) submitNoteForm() tea.Cmd {
	if m.noteForm.submitting {
		return nil
	}
	m.noteForm.violations = noteSchema.Validate(m.noteForm.values())
	if len(m.noteForm.violations) > 0 {
		return nil
	}

	m.noteForm.submitting = true
	if m.noteForm.editing {
		return m.cmdUpdateNote(m.noteForm.noteID, m.noteForm.toUpdateRequest())
	}
	return m.cmdCreateNote(m.noteForm.toCreateRequest())
}

func (m appModel) updateNoteDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenNotesList
	case key.Matches(keyMsg, keys.edit):
		note := m.noteDetail.note
		m.noteForm = newNoteFormModel(&note)
		m.currentScreen = screenNoteForm
	case key.Matches(keyMsg, keys.delete):
		m.confirm.ask(m.noteDetail.note.Title, m.cmdDeleteNote(m.noteDetail.note.ID))
	case key.Matches(keyMsg, keys.copy):
		if m.noteDetail.note.Content != "" {
			return m, cmdCopyToClipboard(m.noteDetail.note.Content)
		}
	}
	return m, nil
}

func (m appModel) updateEventsList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, consumed := m.handleNav(keyMsg); consumed {
		return next, cmd
	}

	now := time.Now()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.eventsList.idx > 0 {
			m.eventsList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.eventsList.idx < len(m.eventsList.ordered(now))-1 {
			m.eventsList.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.eventsList.loading = true
		return m, m.cmdLoadEvents()
	case key.Matches(keyMsg, keys.newItem):
		m.eventForm = newEventFormModel(nil)
		m.currentScreen = screenEventForm
	case key.Matches(keyMsg, keys.enter):
		if event, ok := m.eventsList.current(now); ok {
			m.eventDetail = eventDetailModel{event: event}
			m.currentScreen = screenEventDetail
		}
	case key.Matches(keyMsg, keys.edit):
		if event, ok := m.eventsList.current(now); ok {
			m.eventForm = newEventFormModel(&event)
			m.currentScreen = screenEventForm
		}
	case key.Matches(keyMsg, keys.delete):
		if event, ok := m.eventsList.current(now); ok {
			m.confirm.ask(event.Title, m.cmdDeleteEvent(event.ID))
		}
	}
	return m, nil
}

func (m appModel) updateEventForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenEventsList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.eventForm.setFocus(m.eventForm.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.eventForm.setFocus(m.eventForm.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if cmd := m.submitEventForm(); cmd != nil {
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.eventForm.inputs[m.eventForm.focus], cmd = m.eventForm.inputs[m.eventForm.focus].Update(msg)
	return m, cmd
}

func (m *appModel) submitEventForm() tea.Cmd {
	if m.eventForm.submitting {
		return nil
	}
	m.eventForm.violations = eventSchema.Validate(m.eventForm.values())
	if len(m.eventForm.violations) > 0 {
		return nil
	}

	m.eventForm.submitting = true
	if m.eventForm.editing {
		return m.cmdUpdateEvent(m.eventForm.eventID, m.eventForm.toUpdateRequest())
	}
	return m.cmdCreateEvent(m.eventForm.toCreateRequest())
}

func (m appModel) updateEventDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenEventsList
	case key.Matches(keyMsg, keys.edit):
		event := m.eventDetail.event
		m.eventForm = newEventFormModel(&event)
		m.currentScreen = screenEventForm
	case key.Matches(keyMsg, keys.delete):
		m.confirm.ask(m.eventDetail.event.Title, m.cmdDeleteEvent(m.eventDetail.event.ID))
	}
	return m, nil
}

func (m appModel) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.tags.inputOpen {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.tags.closeInput()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submitTagInput()
		}
		var cmd tea.Cmd
		m.tags.input, cmd = m.tags.input.Update(msg)
		return m, cmd
	}

	if next, cmd, consumed := m.handleNav(keyMsg); consumed {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.tags.idx > 0 {
			m.tags.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.tags.idx < len(m.tags.tags)-1 {
			m.tags.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.tags.loading = true
		return m, m.cmdLoadTags()
	case key.Matches(keyMsg, keys.newItem):
		m.tags.openInput(nil)
	case key.Matches(keyMsg, keys.edit):
		if tag, ok := m.tags.current(); ok {
			m.tags.openInput(&tag)
		}
	case key.Matches(keyMsg, keys.delete):
		if tag, ok := m.tags.current(); ok {
			m.confirm.ask(tag.Name, m.cmdDeleteTag(tag.ID))
		}
	}
	return m, nil
}

func (m *appModel) submitTagInput() tea.Cmd {
	if m.tags.submitting {
		return nil
	}
	name := m.tags.name()
	if name == "" {
		m.tags.violation = "Name is required"
		return nil
	}

	m.tags.violation = ""
	m.tags.submitting = true
	if m.tags.editingTag != 0 {
		return m.cmdUpdateTag(m.tags.editingTag, name)
	}
	return m.cmdCreateTag(name)
}

// ── commands ──

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		_, err := provider.SignIn(ctx, email, password)
		return signInDoneMsg{err: err}
	}
}

func (m appModel) cmdSignUp(email, password string) tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		_, err := provider.SignUp(ctx, email, password, "")
		return signUpDoneMsg{err: err}
	}
}

func (m appModel) applyFederatedPoll(msg federatedPolledMsg) (tea.Model, tea.Cmd) {
	if !m.login.federated {
		return m, nil
	}
	if errors.Is(msg.err, identity.ErrFederatedPending) {
		return m, cmdFederatedTick(msg.session)
	}

	m.login.federated = false
	m.login.verificationURL = ""
	if msg.err != nil {
		return m, m.toast.show(msg.err.Error(), notify.SeverityError)
	}
	// The gate transition routes to the dashboard.
	return m, nil
}

func (m appModel) cmdBeginFederated() tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		session, err := provider.BeginFederated(ctx)
		return federatedStartedMsg{session: session, err: err}
	}
}

func cmdFederatedTick(session identity.FederatedSession) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return federatedTickMsg{session: session}
	})
}

func (m appModel) cmdPollFederated(session identity.FederatedSession) tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		_, err := provider.PollFederated(ctx, session)
		return federatedPolledMsg{session: session, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		return signOutDoneMsg{err: provider.SignOut(ctx)}
	}
}

func (m appModel) listNotesParams() *models.ListNotesParams {
	page, size := m.notesPage, notesPageSize
	archived := m.notesArchived
	return &models.ListNotesParams{Page: &page, Size: &size, Archived: &archived}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx, store := m.ctx, m.stores.Notes
	params := m.listNotesParams()
	return func() tea.Msg {
		page, err := store.FetchAll(ctx, params)
		return notesLoadedMsg{page: page, err: err}
	}
}

func (m appModel) cmdLoadEvents() tea.Cmd {
	ctx, store := m.ctx, m.stores.Events
	return func() tea.Msg {
		events, err := store.FetchAll(ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m appModel) cmdLoadTags() tea.Cmd {
	ctx, store := m.ctx, m.stores.Tags
	return func() tea.Msg {
		tags, err := store.FetchAll(ctx)
		return tagsLoadedMsg{tags: tags, err: err}
	}
}

func (m appModel) cmdCreateNote(req models.CreateNoteRequest) tea.Cmd {
	ctx, store := m.ctx, m.stores.Notes
	return func() tea.Msg {
		note, err := store.Create(ctx, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdateNote(id int64, req models.UpdateNoteRequest) tea.Cmd {
	ctx, store := m.ctx, m.stores.Notes
	return func() tea.Msg {
		note, err := store.Update(ctx, id, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(id int64) tea.Cmd {
	ctx, store := m.ctx, m.stores.Notes
	return func() tea.Msg {
		return noteDeletedMsg{err: store.Delete(ctx, id)}
	}
}

func (m appModel) cmdCreateEvent(req models.CreateEventRequest) tea.Cmd {
	ctx, store := m.ctx, m.stores.Events
	return func() tea.Msg {
		event, err := store.Create(ctx, req)
		return eventSavedMsg{event: event, err: err}
	}
}

func (m appModel) cmdUpdateEvent(id int64, req models.UpdateEventRequest) tea.Cmd {
	ctx, store := m.ctx, m.stores.Events
	return func() tea.Msg {
		event, err := store.Update(ctx, id, req)
		return eventSavedMsg{event: event, err: err}
	}
}

func (m appModel) cmdDeleteEvent(id int64) tea.Cmd {
	ctx, store := m.ctx, m.stores.Events
	return func() tea.Msg {
		return eventDeletedMsg{err: store.Delete(ctx, id)}
	}
}

func (m appModel) cmdCreateTag(name string) tea.Cmd {
	ctx, store := m.ctx, m.stores.Tags
	return func() tea.Msg {
		_, err := store.Create(ctx, models.CreateTagRequest{Name: name})
		return tagSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateTag(id int64, name string) tea.Cmd {
	ctx, store := m.ctx, m.stores.Tags
	return func() tea.Msg {
		_, err := store.Update(ctx, id, models.UpdateTagRequest{Name: name})
		return tagSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTag(id int64) tea.Cmd {
	ctx, store := m.ctx, m.stores.Tags
	return func() tea.Msg {
		return tagDeletedMsg{err: store.Delete(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return toastMsg{message: fmt.Sprintf("Copy failed: %v", err), severity: notify.SeverityError}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusLogin(m loginModel, focus int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (focus + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusSignup(m signupModel, focus int) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (focus + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
