// Package assets provides the stylesheets injected into standalone HTML output.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled in with go:embed
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
// A custom asset directory mirrors the embedded layout:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
