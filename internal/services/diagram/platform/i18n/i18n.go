// Package i18n resolves the request language and its message printer.
package i18n

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/synapse.space/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the viewer's language preference.
	LangCookieName = "synapse_lang"
)

// Localizer formats catalog messages and numbers for one language.
// *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
	Sprint(args ...any) string
}

// ResolveTag determines the best language for the request. The bool reports
// whether the choice came from the lang query param and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := platformi18n.ParseTag(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// ResolveLocalizer resolves the request language, persisting an explicit
// choice as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return platformi18n.Printer(tag), tag
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Percent formats an activation in [0,1] as a whole-number percentage in
// the localizer's locale.
func Percent(loc Localizer, activation float64) string {
	if loc == nil {
		loc = platformi18n.Printer(platformi18n.DefaultTag())
	}
	return loc.Sprint(number.Percent(activation, number.MaxFractionDigits(0)))
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions lists supported languages with the active one marked.
func LanguageOptions(loc Localizer, active language.Tag) []LanguageOption {
	options := make([]LanguageOption, 0, len(platformi18n.SupportedTags()))
	for _, tag := range platformi18n.SupportedTags() {
		label := tag.String()
		if loc != nil {
			label = loc.Sprintf(labelKey(tag))
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			Active: tag == active,
		})
	}
	return options
}

func labelKey(tag language.Tag) string {
	if base, _ := tag.Base(); base.String() == "pt" {
		return "nav.lang_pt_br"
	}
	return "nav.lang_en"
}
