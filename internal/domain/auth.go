package domain

// Identity is the verified subject a credential proves. It carries no more
// than downstream handlers need to authorize writes.
type Identity struct {
	SubjectID string
	IsAdmin   bool
}
