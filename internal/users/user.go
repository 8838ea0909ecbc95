package users

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/dmitrijs2005/userholder/internal/cryptox"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Auth meta keys and values recorded at construction.
const (
	MetaAuth = "auth"
	MetaSrc  = "src"

	AuthPassword = "password"
	AuthSMS      = "sms"
	SrcCSV       = "csv"
)

// User is a single account. Identity fields are fixed at construction;
// only the salted hash and the access code change afterwards.
type User struct {
	id        string
	firstName string
	lastName  string
	email     string
	phone     string
	login     string
	metaKey   string
	metaValue string
	info      string

	hasher   cryptox.Hasher
	notifier Notifier
	codes    CodeSource

	mu           sync.RWMutex
	salt         string
	passwordHash string
	accessCode   string
}

func (u *User) ID() string        { return u.id }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string  { return u.lastName }
func (u *User) Email() string     { return u.email }
func (u *User) Phone() string     { return u.phone }
func (u *User) Login() string     { return u.login }

// Meta returns a copy of the construction metadata, e.g. {"auth": "sms"}.
func (u *User) Meta() map[string]string {
	return map[string]string{u.metaKey: u.metaValue}
}

// Salt returns the per-user salt.
func (u *User) Salt() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.salt
}

// PasswordHash returns the digest of the current password or access code.
func (u *User) PasswordHash() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.passwordHash
}

// AccessCode returns the current one-time code, or "" for password accounts.
func (u *User) AccessCode() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.accessCode
}

// FullName joins first and last name and title-cases each word.
func (u *User) FullName() string {
	name := strings.Join(u.nameParts(), " ")
	return cases.Title(language.Und, cases.NoLower).String(name)
}

// Initials returns the upper-cased first letters of first and last name,
// separated by a space.
func (u *User) Initials() string {
	parts := u.nameParts()
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		r := []rune(p)
		out = append(out, string(unicode.ToUpper(r[0])))
	}
	return strings.Join(out, " ")
}

// Info returns the public snapshot captured when the user was built.
func (u *User) Info() string { return u.info }

func (u *User) nameParts() []string {
	if u.lastName == "" {
		return []string{u.firstName}
	}
	return []string{u.firstName, u.lastName}
}

func (u *User) snapshot() string {
	var b strings.Builder
	fmt.Fprintf(&b, "firstName: %s\n", u.firstName)
	fmt.Fprintf(&b, "lastName: %s\n", orNull(u.lastName))
	fmt.Fprintf(&b, "login: %s\n", u.login)
	fmt.Fprintf(&b, "fullName: %s\n", u.FullName())
	fmt.Fprintf(&b, "initials: %s\n", u.Initials())
	fmt.Fprintf(&b, "email: %s\n", orNull(u.email))
	fmt.Fprintf(&b, "phone: %s\n", orNull(u.phone))
	fmt.Fprintf(&b, "meta: {%s=%s}", u.metaKey, u.metaValue)
	return b.String()
}

func orNull(s string) string {
	if s == "" {
		return "null"
	}
	return s
}
