package session

import (
	"context"
	"sync"

	"go-storefront-api/internal/apiclient"
	"go-storefront-api/internal/localcart"

	"go.uber.org/zap"
)

type State int

const (
	StateGuest State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateGuest:
		return "guest"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// AuthGateway is the slice of the API client the reconciler needs for
// credential exchange.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (apiclient.AuthSession, error)
	Register(ctx context.Context, payload apiclient.RegisterPayload) (apiclient.AuthSession, error)
}

// PusherFactory binds a push channel to one authenticated session.
type PusherFactory func(userID, token string) localcart.Pusher

type Credentials struct {
	Token  string
	UserID string
}

// Reconciler owns the login/logout/register transitions and decides which
// of {local mirror, server cart} wins at each one. Policy: the server cart
// overwrites the mirror on login; logout clears the mirror and leaves the
// server cart alone so the next login restores it.
type Reconciler struct {
	mu        sync.Mutex
	state     State
	auth      AuthGateway
	cache     *localcart.Cache
	newPusher PusherFactory
	creds     *Credentials
	logger    *zap.Logger
}

type Deps struct {
	Auth      AuthGateway
	Cache     *localcart.Cache
	NewPusher PusherFactory
	Logger    *zap.Logger
}

func NewReconciler(deps Deps) *Reconciler {
	if deps.Auth == nil {
		panic("auth gateway cannot be nil")
	}
	if deps.Cache == nil {
		panic("local cart cache cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Reconciler{
		state:     StateGuest,
		auth:      deps.Auth,
		cache:     deps.Cache,
		newPusher: deps.NewPusher,
		logger:    deps.Logger,
	}
}

func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) Credentials() *Credentials {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.creds == nil {
		return nil
	}
	cp := *r.creds
	return &cp
}

func (r *Reconciler) Login(ctx context.Context, email, password string) error {
	return r.authenticate(ctx, func(ctx context.Context) (apiclient.AuthSession, error) {
		return r.auth.Login(ctx, email, password)
	})
}

func (r *Reconciler) Register(ctx context.Context, payload apiclient.RegisterPayload) error {
	return r.authenticate(ctx, func(ctx context.Context) (apiclient.AuthSession, error) {
		return r.auth.Register(ctx, payload)
	})
}

func (r *Reconciler) authenticate(ctx context.Context, exchange func(context.Context) (apiclient.AuthSession, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = StateAuthenticating

	sess, err := exchange(ctx)
	if err != nil {
		// Credential failure: back to guest, mirror untouched.
		r.state = StateGuest
		return err
	}

	r.creds = &Credentials{Token: sess.Token, UserID: sess.UserID}
	r.state = StateAuthenticated

	// Server-wins: whatever the guest accumulated while logged out is
	// discarded in favor of the stored cart.
	r.cache.DetachPusher()
	r.cache.Rebind(sess.UserID)
	if err := r.cache.ReplaceFromServer(ctx, sess.Items, sess.PushSeq); err != nil {
		r.logger.Warn("failed to persist reconciled cart",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
	}

	if r.newPusher != nil {
		r.cache.AttachPusher(r.newPusher(sess.UserID, sess.Token))
	}

	r.logger.Info("session authenticated", zap.String("user_id", sess.UserID))
	return nil
}

// Logout clears the mirror and the credentials. The server cart is
// deliberately preserved; the next login restores it.
func (r *Reconciler) Logout(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.DetachPusher()
	if err := r.cache.Reset(ctx); err != nil {
		r.logger.Warn("failed to clear local cart on logout", zap.Error(err))
	}
	r.cache.Rebind(localcart.GuestKey)

	r.creds = nil
	r.state = StateGuest

	r.logger.Info("session ended")
	return nil
}
