package ports

// Hasher computes content digests used to fingerprint documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Digest returns the hex digest of the given bytes.
	Digest(data []byte) string
	// DigestFile returns the hex digest of a file's content.
	DigestFile(path string) (string, error)
}
