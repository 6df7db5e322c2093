// Package static holds the embedded console assets.
package static

import "embed"

// FS serves the console stylesheet and scripts.
//
//go:embed admin.css watch.js
var FS embed.FS
