// Package static embeds the tracker stylesheet.
package static

import "embed"

// FS exposes tracker static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
