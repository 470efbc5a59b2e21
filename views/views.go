// Package views provides folio's default templ components. Sites that want
// their own markup can supply a different folio.ViewFuncs instead.
//
// Edit the .templ files and run templ generate to refresh the *_templ.go
// files next to them.
package views

//go:generate templ generate

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

// Default returns the built-in templates for cfg.
func Default(cfg folio.SiteConfig) folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:           func(p folio.HomePage) templ.Component { return Home(cfg, p) },
		Listing:        func(p folio.ListingPage) templ.Component { return Listing(cfg, p) },
		ListingPartial: ListingSection,
		Entry:          func(p folio.EntryPage) templ.Component { return Entry(cfg, p) },
		AdminLogin: func(showError bool, csrf string) templ.Component {
			return AdminLogin(cfg, showError, csrf)
		},
		AdminDashboard: func(entries []content.Entry, msg, csrf string) templ.Component {
			return AdminDashboard(cfg, entries, msg, csrf)
		},
		NotFound:    func() templ.Component { return NotFound(cfg) },
		ServerError: func() templ.Component { return ServerError(cfg) },
	}
}
