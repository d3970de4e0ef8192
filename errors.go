package nbsite

import "errors"

// Sentinel errors for library operations.
var (
	ErrNotebookNotFound  = errors.New("notebook not found")
	ErrMalformedNotebook = errors.New("malformed notebook")
	ErrPageRender        = errors.New("page rendering failed")

	// Site validation errors.
	ErrEmptySite          = errors.New("site has no notebooks and no sections")
	ErrInvalidNotebook    = errors.New("invalid notebook entry")
	ErrInvalidSection     = errors.New("invalid section entry")
	ErrDuplicatePageID    = errors.New("duplicate page id")
	ErrDuplicateSection   = errors.New("duplicate section name")
	ErrInvalidRightPanel  = errors.New("invalid right panel")
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrTemplateSetMissing = errors.New("template set could not be loaded")
)
