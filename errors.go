package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Option validation errors.
	ErrInvalidDigest = errors.New("invalid digest algorithm")
	ErrInvalidMode   = errors.New("invalid processing mode")
	ErrInvalidEngine = errors.New("invalid engine")

	// Stylesheet errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidStyle     = assets.ErrInvalidAssetName
	ErrInvalidAssetPath = assets.ErrInvalidBasePath
	ErrReadStyle        = errors.New("failed to read style")
)
