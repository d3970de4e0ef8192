// Package assets provides the HTML page templates used to assemble fragments.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default set)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the builder. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template set
// is not found. This lets a site override the page layout without touching
// the conversion code.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}/
//	        ├── notebook.html    # Notebook page (navigation, metadata)
//	        └── report.html      # Report section page
//
// # Security
//
// Template set names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
