package repositories

// Paging bounds shared by list operations.
const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

// NormalizeLimit clamps a caller supplied page size to [1, MaxListLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
