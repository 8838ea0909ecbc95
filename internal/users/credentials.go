package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userholder/internal/cryptox"
)

// CheckPassword reports whether candidate hashes to the stored digest.
func (u *User) CheckPassword(candidate string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return cryptox.Equal(u.hasher.Hash(u.salt, candidate), u.passwordHash)
}

// ChangePassword replaces the password if oldPass matches. The salt is kept.
func (u *User) ChangePassword(oldPass, newPass string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !cryptox.Equal(u.hasher.Hash(u.salt, oldPass), u.passwordHash) {
		return invalid("password", "the entered password does not match the current password")
	}
	u.passwordHash = u.hasher.Hash(u.salt, newPass)
	return nil
}

// RegenerateAccessCode replaces the access code, rehashes it as the current
// credential and delivers it to the user's phone. The previous code stops
// working even if delivery fails.
func (u *User) RegenerateAccessCode(ctx context.Context) error {
	code, err := u.codes()
	if err != nil {
		return fmt.Errorf("generate access code: %w", err)
	}

	u.mu.Lock()
	u.accessCode = code
	u.passwordHash = u.hasher.Hash(u.salt, code)
	u.mu.Unlock()

	if err := u.notifier.Deliver(ctx, u.phone, code); err != nil {
		return fmt.Errorf("deliver access code: %w", err)
	}
	return nil
}
