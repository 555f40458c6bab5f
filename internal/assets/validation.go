package assets

import (
	"fmt"
	"regexp"
)

// assetNamePattern allows letters, digits, dashes, and underscores, starting
// with a letter or digit. Separators and dots never match.
var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateAssetName checks that an asset name is safe for use as a filename.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (letters, digits, '-' and '_' only)", ErrInvalidAssetName, name)
	}
	return nil
}
