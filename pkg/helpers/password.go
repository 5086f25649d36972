package helpers

import "golang.org/x/crypto/bcrypt"

// CredentialScheme isolates how passwords are stored and compared so the
// store never touches credentials directly. The snapshot format predates
// hashing, so the plain scheme is the default; bcrypt can be selected via
// config without touching any call site.
type CredentialScheme interface {
	// Seal converts a plain password into its stored form.
	Seal(plain string) (string, error)
	// Verify compares a stored credential with a plain password.
	Verify(stored, plain string) bool
}

// PlainScheme stores passwords verbatim and compares by string equality.
// This reproduces the legacy snapshot format; it is a known weakness, kept
// only for compatibility with existing data files.
type PlainScheme struct{}

func (PlainScheme) Seal(plain string) (string, error) { return plain, nil }

func (PlainScheme) Verify(stored, plain string) bool { return stored == plain }

// BcryptScheme stores bcrypt hashes.
type BcryptScheme struct{}

func (BcryptScheme) Seal(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptScheme) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// SchemeByName maps a config value to a credential scheme, defaulting to plain.
func SchemeByName(name string) CredentialScheme {
	if name == "bcrypt" {
		return BcryptScheme{}
	}
	return PlainScheme{}
}
