package assets

// DefaultStyle is the built-in style applied when none is configured.
const DefaultStyle = "picks"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in CSS style by name, without the .css extension.
// Returns ErrStyleNotFound if the style does not exist, or
// ErrInvalidAssetName if the name contains path separators or dots.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
