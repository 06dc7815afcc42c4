package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
// It knows nothing about users, storage or the network.
type PasswordHasher interface {
	// Hash returns the encoded hash of password, salt included.
	Hash(password string) (string, error)

	// Compare reports whether password matches the encoded hash.
	// A mismatch returns [ErrPasswordMismatch].
	Compare(hash, password string) error

	// CompareDummy runs a full comparison against a fixed hash and always
	// reports a mismatch. Sign-in calls it for unknown emails so the response
	// time does not tell whether the account exists.
	CompareDummy(password string)
}
