// Package templates renders tracker HTML pages.
package templates

import (
	"strings"

	"github.com/louisbranch/trainingtracker/internal/platform/branding"
)

// MainID is the id of the element HTMX requests swap.
const MainID = "main"

const defaultLang = "en-US"

// ComposePageTitle appends the product name to title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, "| "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

func layoutLang(lang string) string {
	if lang = strings.TrimSpace(lang); lang == "" {
		return defaultLang
	}
	return lang
}
