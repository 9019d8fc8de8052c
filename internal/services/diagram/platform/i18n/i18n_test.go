package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        string
		wantPersist bool
	}{
		{name: "default", target: "/", want: "en-US"},
		{name: "query wins", target: "/?lang=pt-BR", cookie: "en-US", accept: "en", want: "pt-BR", wantPersist: true},
		{name: "unsupported query falls through to cookie", target: "/?lang=ja", cookie: "pt-BR", want: "pt-BR"},
		{name: "cookie beats accept language", target: "/", cookie: "en-US", accept: "pt-BR", want: "en-US"},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9,en;q=0.5", want: "pt-BR"},
		{name: "unsupported accept language", target: "/", accept: "ja", want: "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			got, persist := ResolveTag(req)
			if got.String() != tt.want || persist != tt.wantPersist {
				t.Fatalf("ResolveTag() = %s, %t, want %s, %t", got, persist, tt.want, tt.wantPersist)
			}
		})
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	printer, tag := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if tag.String() != "pt-BR" {
		t.Fatalf("tag = %s, want pt-BR", tag)
	}
	if got := printer.Sprintf("selector.cat"); got != "Imagem de Gato" {
		t.Fatalf("selector.cat = %q", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	printer, tag := ResolveLocalizer(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if tag != language.MustParse("en-US") {
		t.Fatalf("tag = %s", tag)
	}
	for activation, want := range map[float64]string{0.92: "92%", 0.08: "8%", 1: "100%", 0: "0%"} {
		if got := Percent(printer, activation); got != want {
			t.Errorf("Percent(%v) = %q, want %q", activation, got, want)
		}
	}
	if got := Percent(nil, 0.45); got != "45%" {
		t.Errorf("Percent(nil, 0.45) = %q", got)
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	printer, tag := ResolveLocalizer(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	options := LanguageOptions(printer, tag)
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("unexpected active flags %+v", options)
	}
	if options[1].Label != "Português (Brasil)" {
		t.Fatalf("pt label = %q", options[1].Label)
	}
}
