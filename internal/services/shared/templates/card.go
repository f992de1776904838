// Package templates provides view components shared by tracker pages.
package templates

import "strings"

const (
	// CardClass is the fixed class list of every card container.
	CardClass = "card bg-base-100 border border-base-300 shadow-sm"
	// CardContentClass is the fixed padding wrapper inside a card.
	CardContentClass = "card-body p-4"
)

func cardClass(className string) string {
	extra := strings.Join(strings.Fields(className), " ")
	if extra == "" {
		return CardClass
	}
	return CardClass + " " + extra
}
