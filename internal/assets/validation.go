package assets

import "fmt"

// maxNameLength bounds style names.
const maxNameLength = 64

// ValidateAssetName checks that a style name is safe to use as a file name:
// non-empty, at most 64 bytes of ASCII letters, digits, '-' and '_'.
// Returns ErrInvalidAssetName otherwise.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
