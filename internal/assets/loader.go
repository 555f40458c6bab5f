package assets

// DefaultStyleName is the built-in style meant for general documents.
const DefaultStyleName = "default"

// AssetLoader loads stylesheets by name.
//
// A name is a bare identifier without the .css extension. Loaders return
// ErrInvalidAssetName for names that fail ValidateAssetName, and
// ErrStyleNotFound when the name is valid but unknown, which lets
// AssetResolver fall back to the next source.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}
