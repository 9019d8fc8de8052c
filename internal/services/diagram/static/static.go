package static

import "embed"

// FS exposes diagram static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
