// Package registry is the process-wide user store: it enforces one account
// per login and mediates registration, login and access code requests.
//
// A Registry is constructed once at start-up and handed to whoever needs it;
// there is no package-level instance.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userholder/internal/common"
	"github.com/dmitrijs2005/userholder/internal/logging"
	"github.com/dmitrijs2005/userholder/internal/metrics"
	usersrepo "github.com/dmitrijs2005/userholder/internal/repositories/users"
	"github.com/dmitrijs2005/userholder/internal/users"
)

type Registry struct {
	repo    usersrepo.Repository
	factory *users.Factory
	logger  logging.Logger
	metrics *metrics.Metrics
}

func New(repo usersrepo.Repository, factory *users.Factory, logger logging.Logger, m *metrics.Metrics) *Registry {
	if m == nil {
		m = metrics.Noop()
	}
	return &Registry{
		repo:    repo,
		factory: factory,
		logger:  logger.With("component", "registry"),
		metrics: m,
	}
}

// RegisterByEmail creates a password account for fullName ("First [Last]").
// A login that is already taken yields users.DuplicateUserError.
func (r *Registry) RegisterByEmail(ctx context.Context, fullName, email, password string) (*users.User, error) {
	u, err := r.factory.Make(ctx, fullName, email, password, "")
	if err != nil {
		r.metrics.Registration(metrics.MethodEmail, resultOf(err))
		return nil, err
	}
	return r.insert(ctx, u, metrics.MethodEmail)
}

// RegisterByPhone creates an access-code account and delivers the first code.
// A phone that is already registered is rejected before any code is sent.
func (r *Registry) RegisterByPhone(ctx context.Context, fullName, rawPhone string) (*users.User, error) {
	if _, err := r.repo.GetUserByLogin(ctx, users.NormalizePhone(rawPhone)); err == nil {
		r.metrics.Registration(metrics.MethodPhone, metrics.ResultDuplicate)
		return nil, users.DuplicateUserError{Login: users.NormalizePhone(rawPhone)}
	}

	u, err := r.factory.Make(ctx, fullName, "", "", rawPhone)
	if err != nil {
		r.metrics.Registration(metrics.MethodPhone, resultOf(err))
		return nil, err
	}
	return r.insert(ctx, u, metrics.MethodPhone)
}

// Login returns the user's snapshot when password matches. Unknown logins and
// wrong passwords are indistinguishable: both return ok == false.
func (r *Registry) Login(ctx context.Context, login, password string) (info string, ok bool) {
	u, err := r.repo.GetUserByLogin(ctx, users.NormalizeLogin(login))
	if err != nil || !u.CheckPassword(password) {
		r.metrics.Login(false)
		return "", false
	}
	r.metrics.Login(true)
	return u.Info(), true
}

// RequestAccessCode issues a fresh access code for login. Unknown logins are
// ignored.
func (r *Registry) RequestAccessCode(ctx context.Context, login string) error {
	u, err := r.repo.GetUserByLogin(ctx, users.NormalizeLogin(login))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := u.RegenerateAccessCode(ctx); err != nil {
		return err
	}
	r.metrics.AccessCode()
	return nil
}

// ImportUsers parses exported rows and returns their snapshots in order.
// Parsed users are not added to the registry.
// TODO: insert imported users once product confirms import is not a preview.
func (r *Registry) ImportUsers(ctx context.Context, rows []string) ([]string, error) {
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		u, err := r.factory.Import(row)
		if err != nil {
			r.metrics.Import(resultOf(err))
			r.logger.Warn(ctx, "import row rejected", "row", i, "error", err)
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		r.metrics.Import(metrics.ResultOK)
		out = append(out, u.Info())
	}
	return out, nil
}

// Clear removes every user.
func (r *Registry) Clear(ctx context.Context) error {
	return r.repo.Clear(ctx)
}

func (r *Registry) insert(ctx context.Context, u *users.User, method string) (*users.User, error) {
	if _, err := r.repo.Create(ctx, u); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			r.metrics.Registration(method, metrics.ResultDuplicate)
			return nil, users.DuplicateUserError{Login: u.Login()}
		}
		r.metrics.Registration(method, metrics.ResultError)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	r.metrics.Registration(method, metrics.ResultOK)
	r.logger.Info(ctx, "user registered", "login", u.Login(), "method", method, "id", u.ID())
	return u, nil
}

func resultOf(err error) string {
	if errors.Is(err, common.ErrValidation) {
		return metrics.ResultInvalid
	}
	return metrics.ResultError
}
