// Package scaffold embeds the starter site rendered by `folio new`.
package scaffold

import "embed"

// Templates contains the starter site: a main package, sample content,
// and an .env example. Files use Go text/template syntax; a .tmpl suffix
// is stripped on output.
//
//go:embed all:templates
var Templates embed.FS
