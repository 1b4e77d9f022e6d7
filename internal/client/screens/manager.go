package screens

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/services"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Mode tells whether the modal creates a new record or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// ManagerView is a snapshot of the Collection Manager. Users and Draft are
// copies and may be used freely by the caller.
type ManagerView struct {
	Users        []models.User
	Draft        models.Draft
	Mode         Mode
	ModalVisible bool
	Error        string
	Busy         bool
}

// Title is the modal heading.
func (v ManagerView) Title() string {
	if v.Mode == ModeEdit {
		return "Edit User"
	}
	return "Add User"
}

// CollectionManager is the user table screen. The local collection is only
// ever replaced wholesale by a successful List; mutations are followed by a
// fresh List rather than patched in locally.
type CollectionManager struct {
	users services.UserService
	log   logging.Logger

	mu           sync.Mutex
	cache        []models.User
	draft        models.Draft
	mode         Mode
	modalVisible bool
	errState     string
	busy         bool
}

func NewCollectionManager(users services.UserService, log logging.Logger) *CollectionManager {
	return &CollectionManager{
		users: users,
		log:   log.With("screen", "users"),
	}
}

// begin marks the start of a remote call and clears the Error State.
// Must be called with mu held.
func (m *CollectionManager) begin() error {
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	m.errState = ""
	return nil
}

// List fetches the collection and replaces the local cache with it. It is
// also what the screen runs when it is first shown.
func (m *CollectionManager) List(ctx context.Context) error {
	m.mu.Lock()
	if err := m.begin(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.mu.Unlock()

	return m.refresh(ctx)
}

// refresh performs the List call of a call that already holds the busy flag
// and releases it.
func (m *CollectionManager) refresh(ctx context.Context) error {
	users, err := m.users.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false
	if err != nil {
		m.errState = err.Error()
		return err
	}
	m.cache = users
	return nil
}

// fail records err and releases the busy flag.
func (m *CollectionManager) fail(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false
	m.errState = err.Error()
	return err
}

// OpenCreate shows an empty modal. Like OpenEdit and SetField it returns
// ErrBusy while a call is in flight: a finishing Save closes the modal, and
// a draft opened or typed into meanwhile would be lost with it.
func (m *CollectionManager) OpenCreate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}
	m.draft = models.NewDraft()
	m.mode = ModeCreate
	m.modalVisible = true
	return nil
}

// OpenEdit fills the modal with a copy of the record whose id matches.
func (m *CollectionManager) OpenEdit(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}

	i := slices.IndexFunc(m.cache, func(u models.User) bool { return u.ID.String() == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRecord, id)
	}
	d, err := models.DraftFromUser(m.cache[i])
	if err != nil {
		return err
	}
	m.draft = d
	m.mode = ModeEdit
	m.modalVisible = true
	return nil
}

func (m *CollectionManager) SetField(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.modalVisible {
		return ErrModalClosed
	}
	if m.busy {
		return ErrBusy
	}
	m.draft.Set(key, value)
	return nil
}

// CloseModal drops the draft. Calling it with the modal hidden does nothing.
func (m *CollectionManager) CloseModal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = nil
	m.modalVisible = false
}

// Save sends the draft as a create or an update depending on the modal
// mode. On success the modal closes and the collection is fetched again;
// on failure the modal stays open with the draft intact.
func (m *CollectionManager) Save(ctx context.Context) error {
	m.mu.Lock()
	if !m.modalVisible {
		m.mu.Unlock()
		return ErrModalClosed
	}
	if m.busy {
		m.mu.Unlock()
		return ErrBusy
	}
	if err := m.draft.Validate(models.RequiredUserFields...); err != nil {
		m.errState = err.Error()
		m.mu.Unlock()
		return err
	}
	_ = m.begin()
	draft, mode := m.draft.Clone(), m.mode
	m.mu.Unlock()

	var err error
	if mode == ModeEdit {
		err = m.users.Update(ctx, draft)
	} else {
		err = m.users.Create(ctx, draft)
	}
	if err != nil {
		return m.fail(err)
	}

	m.mu.Lock()
	m.draft = nil
	m.modalVisible = false
	m.mu.Unlock()

	m.log.Debug(ctx, "draft saved", "mode", mode.String())
	return m.refresh(ctx)
}

// Delete removes the record and fetches the collection again.
func (m *CollectionManager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	if err := m.begin(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.mu.Unlock()

	if err := m.users.Delete(ctx, id); err != nil {
		return m.fail(err)
	}
	return m.refresh(ctx)
}

func (m *CollectionManager) View() ManagerView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ManagerView{
		Users:        slices.Clone(m.cache),
		Draft:        m.draft.Clone(),
		Mode:         m.mode,
		ModalVisible: m.modalVisible,
		Error:        m.errState,
		Busy:         m.busy,
	}
}
