package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/dbx"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/sessions"
)

// memStore is an in-memory account and session store with the same
// version compare-and-swap semantics as the PostgreSQL repository.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	roles    map[string][]string
	sessions map[string]*models.Session
	nextSess int

	reads        int
	writes       int
	accessWrites int

	findErr         error
	createErr       error
	updateErr       error
	updateAccessErr error

	// beforeUpdateAccess runs before the CAS, outside the lock, so a test
	// can slip in a competing writer.
	beforeUpdateAccess func(s *memStore)
}

func newMemStore(accs ...*models.Account) *memStore {
	s := &memStore{
		accounts: map[string]*models.Account{},
		roles:    map[string][]string{},
		sessions: map[string]*models.Session{},
	}
	for _, a := range accs {
		s.accounts[a.ID] = cloneAccount(a)
	}
	return s
}

func cloneAccount(a *models.Account) *models.Account {
	c := *a
	c.EngineAccess = a.EngineAccess.Clone()
	c.MaterialAccess = a.MaterialAccess.Clone()
	c.Roles = append([]string(nil), a.Roles...)
	return &c
}

func (s *memStore) get(id string) *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		return cloneAccount(a)
	}
	return nil
}

func (s *memStore) login(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSess++
	id := fmt.Sprintf("sess-%d", s.nextSess)
	s.sessions[id] = &models.Session{ID: id, UserID: userID, CreatedAt: time.Now()}
	return id
}

// directAccessWrite changes a vector and balance as another caller would.
func (s *memStore) directAccessWrite(id string, d models.Domain, v models.Vector, tokens int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accounts[id]
	next := a.WithAccess(d, v, tokens)
	next.Version++
	s.accounts[id] = &next
}

type memAccounts struct{ s *memStore }

func (r memAccounts) Create(_ context.Context, acc *models.Account) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, acc.Email) {
			return nil, common.NewStoreError(common.ErrConflict, fmt.Sprintf("Email '%s' is already taken.", acc.Email))
		}
		if strings.EqualFold(a.UserName, acc.UserName) {
			return nil, common.NewStoreError(common.ErrConflict, fmt.Sprintf("Username '%s' is already taken.", acc.UserName))
		}
	}
	s.writes++
	acc.CreatedAt = time.Now()
	s.accounts[acc.ID] = cloneAccount(acc)
	return acc, nil
}

func (r memAccounts) AddRole(_ context.Context, userID, role string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.roles[userID] = append(s.roles[userID], role)
	return nil
}

func (r memAccounts) FindByID(_ context.Context, id string) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.findErr != nil {
		return nil, s.findErr
	}
	if a, ok := s.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, common.ErrorNotFound
}

func (r memAccounts) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, a := range s.accounts {
		if accounts.NormalizeEmail(a.Email) == accounts.NormalizeEmail(email) {
			return cloneAccount(a), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memAccounts) Roles(_ context.Context, userID string) ([]string, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.roles[userID]...), nil
}

func (r memAccounts) update(id string, fn func(a *models.Account)) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	a, ok := s.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	s.writes++
	fn(a)
	return nil
}

func (r memAccounts) UpdatePassword(_ context.Context, userID, hash string) error {
	return r.update(userID, func(a *models.Account) { a.PasswordHash = hash })
}

func (r memAccounts) UpdateUsername(_ context.Context, userID, userName string) error {
	s := r.s
	s.mu.Lock()
	for id, a := range s.accounts {
		if id != userID && strings.EqualFold(a.UserName, userName) {
			s.mu.Unlock()
			return common.NewStoreError(common.ErrConflict, fmt.Sprintf("Username '%s' is already taken.", userName))
		}
	}
	s.mu.Unlock()
	return r.update(userID, func(a *models.Account) { a.UserName = userName })
}

func (r memAccounts) ConfirmEmail(_ context.Context, userID string) error {
	return r.update(userID, func(a *models.Account) {
		a.EmailConfirmed = true
		a.ConfirmationHash = ""
	})
}

func (r memAccounts) UpdateAccess(_ context.Context, userID string, d models.Domain, v models.Vector, tokens, expectedVersion int64) (int64, error) {
	s := r.s
	if hook := s.beforeUpdateAccess; hook != nil {
		hook(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateAccessErr != nil {
		return 0, s.updateAccessErr
	}
	a, ok := s.accounts[userID]
	if !ok || a.Version != expectedVersion {
		return 0, common.ErrVersionConflict
	}
	if tokens < 0 {
		return 0, common.NewStoreError(errors.New("check violation"), MsgPersistFailed)
	}
	next := a.WithAccess(d, v, tokens)
	next.Version++
	s.accounts[userID] = &next
	s.writes++
	s.accessWrites++
	return next.Version, nil
}

type memSessions struct{ s *memStore }

func (r memSessions) Create(_ context.Context, userID string) (*models.Session, error) {
	id := r.s.login(userID)
	return &models.Session{ID: id, UserID: userID}, nil
}

func (r memSessions) Find(_ context.Context, id string) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sess, ok := r.s.sessions[id]; ok {
		return sess, nil
	}
	return nil, common.ErrorNotFound
}

func (r memSessions) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, id)
	return nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return memAccounts{m.s} }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository        { return memSessions{m.s} }

// fakeHasher keeps tests fast; bcrypt itself is covered in package auth.
type fakeHasher struct{ err error }

func (h fakeHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}

func (h fakeHasher) Check(plain, hash string) bool {
	return plain != "" && hash == "hashed:"+plain
}

type countingRecorder struct {
	mu      sync.Mutex
	logins  map[string]int
	changes map[string]int
	charged int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{logins: map[string]int{}, changes: map[string]int{}}
}

func (r *countingRecorder) Login(mode, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logins[mode+"/"+outcome]++
}

func (r *countingRecorder) CapabilityChange(domain, outcome string, charged int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes[domain+"/"+outcome]++
	r.charged += charged
}

const (
	aliceID    = "8f1c1c3e-5d6a-4a43-9d5e-0f3a2b1c4d5e"
	alicePass  = "Secret#1"
	aliceEmail = "alice@example.com"
)

func newAlice(tokens int64, engines models.Vector) *models.Account {
	return &models.Account{
		ID:             aliceID,
		Email:          aliceEmail,
		UserName:       "alice",
		PasswordHash:   "hashed:" + alicePass,
		EmailConfirmed: true,
		Tokens:         tokens,
		EngineAccess:   engines,
	}
}
