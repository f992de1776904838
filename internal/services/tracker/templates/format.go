package templates

import (
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var supportedLanguages = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
	language.German,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Formatter renders numbers and dates for one negotiated language.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter negotiates a language from an Accept-Language header value.
func NewFormatter(acceptLanguage string) Formatter {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.AmericanEnglish}
	}
	_, index, _ := languageMatcher.Match(tags...)
	tag := supportedLanguages[index]
	return Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// FormatterForRequest negotiates from the lang query parameter, falling back
// to the Accept-Language header.
func FormatterForRequest(r *http.Request) Formatter {
	if r == nil {
		return NewFormatter("")
	}
	if lang := strings.TrimSpace(r.URL.Query().Get(LangParam)); lang != "" {
		if _, err := language.Parse(lang); err == nil {
			return NewFormatter(lang)
		}
	}
	return NewFormatter(r.Header.Get("Accept-Language"))
}

// Lang returns the BCP 47 tag for the html lang attribute.
func (f Formatter) Lang() string {
	return f.tag.String()
}

func (f Formatter) p() *message.Printer {
	if f.printer == nil {
		return message.NewPrinter(language.AmericanEnglish)
	}
	return f.printer
}

// Calories formats a calorie amount with one decimal place.
func (f Formatter) Calories(value float64) string {
	return f.p().Sprintf("%.1f kcal", value)
}

// Number formats a detail value with up to two decimals.
func (f Formatter) Number(value float64) string {
	return f.p().Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
}

// Count formats an integer count.
func (f Formatter) Count(value int) string {
	return f.p().Sprintf("%d", value)
}

// RelativeDay describes day relative to today, both calendar days.
func (f Formatter) RelativeDay(day, today time.Time) string {
	if day.Equal(today) {
		return "today"
	}
	return humanize.RelTime(day, today, "ago", "from now")
}
