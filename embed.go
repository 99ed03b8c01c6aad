package portfolio

import "embed"

// StaticAssets contains the stylesheet and scripts served under /static/.
//
//go:embed static
var StaticAssets embed.FS
