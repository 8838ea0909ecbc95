package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userholder/internal/cryptox"
	"github.com/google/uuid"
)

const (
	// AccessCodeLength is the number of characters in a generated access code.
	AccessCodeLength = 6

	AccessCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeSource produces a fresh access code.
type CodeSource func() (string, error)

// SaltSource produces a fresh per-user salt.
type SaltSource func() (string, error)

// NewAccessCode draws AccessCodeLength characters uniformly from AccessCodeAlphabet.
func NewAccessCode() (string, error) {
	return cryptox.RandomString(AccessCodeLength, AccessCodeAlphabet)
}

// Factory builds users. It is safe for concurrent use.
type Factory struct {
	hasher   cryptox.Hasher
	notifier Notifier
	codes    CodeSource
	salts    SaltSource
}

type Option func(*Factory)

// WithCodeSource overrides the access code generator.
func WithCodeSource(c CodeSource) Option {
	return func(f *Factory) { f.codes = c }
}

// WithSaltSource overrides the salt generator.
func WithSaltSource(s SaltSource) Option {
	return func(f *Factory) { f.salts = s }
}

func NewFactory(h cryptox.Hasher, n Notifier, opts ...Option) *Factory {
	f := &Factory{
		hasher:   h,
		notifier: n,
		codes:    NewAccessCode,
		salts:    cryptox.NewSalt,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewEmailUser creates a password account. The login is the lower-cased email.
func (f *Factory) NewEmailUser(firstName, lastName, email, password string) (*User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, invalid("firstName", "first name must not be blank")
	}
	if strings.TrimSpace(email) == "" {
		return nil, invalid("email", "email or phone must not be blank")
	}

	u := f.newUser(firstName, lastName, MetaAuth, AuthPassword)
	u.email = email
	u.login = strings.ToLower(email)

	salt, err := f.salts()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	u.salt = salt
	u.passwordHash = f.hasher.Hash(salt, password)

	u.info = u.snapshot()
	return u, nil
}

// NewPhoneUser creates an access-code account. The phone is normalized and
// validated, a code is generated and delivered through the Notifier.
func (f *Factory) NewPhoneUser(ctx context.Context, firstName, lastName, rawPhone string) (*User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, invalid("firstName", "first name must not be blank")
	}
	if strings.TrimSpace(rawPhone) == "" {
		return nil, invalid("phone", "email or phone must not be blank")
	}

	phone := NormalizePhone(rawPhone)
	if !ValidPhone(phone) {
		return nil, invalid("phone", "enter a valid phone number starting with a + and containing 11 digits")
	}

	u := f.newUser(firstName, lastName, MetaAuth, AuthSMS)
	u.phone = phone
	u.login = phone

	salt, err := f.salts()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	code, err := f.codes()
	if err != nil {
		return nil, fmt.Errorf("generate access code: %w", err)
	}
	u.salt = salt
	u.accessCode = code
	u.passwordHash = f.hasher.Hash(salt, code)

	u.info = u.snapshot()

	if err := f.notifier.Deliver(ctx, phone, code); err != nil {
		return nil, fmt.Errorf("deliver access code: %w", err)
	}
	return u, nil
}

// RestoreInput carries previously exported user fields.
type RestoreInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Salt         string
	PasswordHash string
}

// Restore rebuilds a user from exported fields without rehashing. Exactly one
// of Email and Phone must be set.
func (f *Factory) Restore(in RestoreInput) (*User, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, invalid("firstName", "first name must not be blank")
	}

	hasEmail := strings.TrimSpace(in.Email) != ""
	hasPhone := strings.TrimSpace(in.Phone) != ""
	if hasEmail == hasPhone {
		return nil, invalid("login", "exactly one of email or phone must be set")
	}
	if strings.TrimSpace(in.Salt) == "" || strings.TrimSpace(in.PasswordHash) == "" {
		return nil, invalid("hash", "wrong hash")
	}

	u := f.newUser(in.FirstName, in.LastName, MetaSrc, SrcCSV)
	if hasEmail {
		u.email = in.Email
		u.login = strings.ToLower(in.Email)
	} else {
		u.phone = NormalizePhone(in.Phone)
		if u.phone == "" {
			return nil, invalid("phone", "email or phone must not be blank")
		}
		u.login = u.phone
	}
	u.salt = in.Salt
	u.passwordHash = in.PasswordHash

	u.info = u.snapshot()
	return u, nil
}

// Make builds a user from a full name and either a phone or an email and
// password. A non-blank phone wins over email.
func (f *Factory) Make(ctx context.Context, fullName, email, password, phone string) (*User, error) {
	first, last, err := SplitFullName(fullName)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.TrimSpace(phone) != "":
		return f.NewPhoneUser(ctx, first, last, phone)
	case strings.TrimSpace(email) != "" && strings.TrimSpace(password) != "":
		return f.NewEmailUser(first, last, email, password)
	default:
		return nil, invalid("", "email or phone must not be blank")
	}
}

// Import parses an exported row "fullName;email;salt:hash;phone". Empty email
// or phone fields are absent; when a phone is present it becomes the login
// and the email is ignored.
func (f *Factory) Import(row string) (*User, error) {
	fields := strings.Split(row, ";")
	if len(fields) != 4 {
		return nil, invalid("csv", fmt.Sprintf("expected 4 fields, got %d", len(fields)))
	}

	first, last, err := SplitFullName(fields[0])
	if err != nil {
		return nil, err
	}
	salt, hash, err := SplitSaltAndHash(fields[2])
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(fields[1])
	phone := strings.TrimSpace(fields[3])

	in := RestoreInput{FirstName: first, LastName: last, Salt: salt, PasswordHash: hash}
	switch {
	case phone != "":
		in.Phone = phone
	case email != "":
		in.Email = email
	default:
		return nil, invalid("", "email or phone must not be blank")
	}
	return f.Restore(in)
}

func (f *Factory) newUser(firstName, lastName, metaKey, metaValue string) *User {
	return &User{
		id:        uuid.NewString(),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		metaKey:   metaKey,
		metaValue: metaValue,
		hasher:    f.hasher,
		notifier:  f.notifier,
		codes:     f.codes,
	}
}
