package folio

import "embed"

// EmbeddedAssets contains the default assets: folio.css and folio.js,
// served under /public/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
