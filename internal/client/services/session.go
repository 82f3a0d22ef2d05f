package services

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/postview/internal/client/auth"
	"github.com/dmitrijs2005/postview/internal/client/models"
	"github.com/dmitrijs2005/postview/internal/client/repositories/kv"
	"github.com/dmitrijs2005/postview/internal/client/token"
	"github.com/dmitrijs2005/postview/internal/logging"
)

const msgUnexpected = "An unexpected error occurred"

// SessionService is the session state machine:
//
//	Unloaded -> Loading -> Unauthenticated | Authenticated
//	Unauthenticated -> Loading (Login) -> Unauthenticated | Authenticated
//	Authenticated -> Loading (Login) -> Authenticated
//	Authenticated -> Unauthenticated (Logout)
//
// Operations are not serialized against each other; when they race, the
// last state written wins.
type SessionService struct {
	repo   kv.Repository
	codec  *token.Codec
	logger logging.Logger

	mu    sync.RWMutex
	state SessionState
	obs   observers[SessionState]
}

// NewSessionService returns a service in the Unloaded state.
func NewSessionService(repo kv.Repository, codec *token.Codec, logger logging.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		codec:  codec,
		logger: logger.With("component", "session"),
		state:  Unloaded{},
	}
}

// State returns the current state.
func (s *SessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns the current state flattened for views.
func (s *SessionService) Snapshot() SessionSnapshot {
	return Snapshot(s.State())
}

// Subscribe registers fn to be called after every transition.
func (s *SessionService) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	return s.obs.subscribe(fn)
}

func (s *SessionService) setState(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	s.obs.notify(st)
}

// Restore rebuilds the session from storage. It ends Authenticated only when
// both the token and the user are stored and the token has not expired;
// otherwise stale entries are removed. Storage errors are logged and leave
// the session Unauthenticated.
func (s *SessionService) Restore(ctx context.Context) {
	s.setState(Loading{})

	var (
		tok, userJSON       string
		haveToken, haveUser bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tok, haveToken, err = s.repo.Get(gctx, TokenKey)
		return err
	})
	g.Go(func() (err error) {
		userJSON, haveUser, err = s.repo.Get(gctx, UserKey)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error(ctx, "error restoring session", "err", err)
		s.setState(Unauthenticated{})
		return
	}

	if haveToken && haveUser && s.codec.IsValid(tok) {
		var u models.User
		err := json.Unmarshal([]byte(userJSON), &u)
		if err == nil {
			s.logger.Debug(ctx, "session restored", "user_id", u.ID)
			s.setState(Authenticated{User: u, Token: tok})
			return
		}
		s.logger.Warn(ctx, "stored user is not valid JSON", "err", err)
	}

	if err := s.clearStorage(ctx); err != nil {
		s.logger.Error(ctx, "error clearing stale session", "err", err)
	}
	s.setState(Unauthenticated{})
}

// Login authenticates the credentials, persists a new token with the user
// and reports whether the session is now Authenticated. A failed attempt
// leaves an existing session in place.
func (s *SessionService) Login(ctx context.Context, email, password string) bool {
	prev := s.State()
	s.setState(Loading{})

	user, err := auth.Authenticate(models.Credentials{Email: email, Password: password})
	if err != nil {
		s.loginFailed(ctx, prev, err.Error())
		return false
	}

	tok := s.codec.Issue(user)
	userJSON, err := json.Marshal(user)
	if err != nil {
		s.logger.Error(ctx, "login error", "err", err)
		s.loginFailed(ctx, prev, msgUnexpected)
		return false
	}

	if err := s.persist(ctx, tok, string(userJSON)); err != nil {
		s.logger.Error(ctx, "login error", "err", err)
		s.loginFailed(ctx, prev, msgUnexpected)
		return false
	}

	s.logger.Info(ctx, "logged in", "user_id", user.ID)
	s.setState(Authenticated{User: user, Token: tok})
	return true
}

// loginFailed restores prev when it was Authenticated; otherwise the session
// settles Unauthenticated carrying msg.
func (s *SessionService) loginFailed(ctx context.Context, prev SessionState, msg string) {
	if st, ok := prev.(Authenticated); ok {
		s.logger.Warn(ctx, "login failed, keeping current session", "reason", msg)
		s.setState(st)
		return
	}
	s.setState(Unauthenticated{Err: msg})
}

// Logout removes the stored session and resets the state. The in-memory
// session always ends, even when storage cleanup fails.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.clearStorage(ctx); err != nil {
		s.logger.Error(ctx, "logout error", "err", err)
	}
	s.setState(Unauthenticated{})
}

// ClearError drops the message left by a failed login.
func (s *SessionService) ClearError() {
	s.mu.Lock()
	st, ok := s.state.(Unauthenticated)
	if !ok || st.Err == "" {
		s.mu.Unlock()
		return
	}
	s.state = Unauthenticated{}
	s.mu.Unlock()

	s.obs.notify(Unauthenticated{})
}

// persist writes the token and user as one batch when the backend supports
// it, otherwise as two concurrent writes.
func (s *SessionService) persist(ctx context.Context, tok, userJSON string) error {
	if b, ok := s.repo.(kv.Batcher); ok {
		return b.SetMany(ctx, map[string]string{TokenKey: tok, UserKey: userJSON})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.repo.Set(gctx, TokenKey, tok) })
	g.Go(func() error { return s.repo.Set(gctx, UserKey, userJSON) })
	return g.Wait()
}

func (s *SessionService) clearStorage(ctx context.Context) error {
	if b, ok := s.repo.(kv.Batcher); ok {
		return b.RemoveMany(ctx, TokenKey, UserKey)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.repo.Remove(gctx, TokenKey) })
	g.Go(func() error { return s.repo.Remove(gctx, UserKey) })
	return g.Wait()
}
