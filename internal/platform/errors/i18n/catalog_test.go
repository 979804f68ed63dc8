package i18n

import (
	"strings"
	"testing"
)

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	cat := GetCatalog("xx-XX")
	if cat.Locale() != BaseLocale {
		t.Fatalf("expected fallback to %s, got %s", BaseLocale, cat.Locale())
	}
	if GetCatalog("").Locale() != BaseLocale {
		t.Fatalf("expected empty locale to fall back")
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	msg := cat.Format(CodeInvalidScope, map[string]string{"Scope": "-3"})
	if msg == CodeInvalidScope {
		t.Fatalf("expected a rendered message, got the code")
	}
	if want := "-3"; !strings.Contains(msg, want) {
		t.Fatalf("expected message to contain %q, got %q", want, msg)
	}
}

func TestFormatFallsBackToCode(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	if msg := cat.Format("NO_SUCH_CODE", nil); msg != "NO_SUCH_CODE" {
		t.Fatalf("expected code fallback, got %q", msg)
	}
}

func TestRegisterCatalogOverridesLocale(t *testing.T) {
	RegisterCatalog("pt-BR", NewCatalog("pt-BR", map[Code]string{
		CodeNotFound: "registro nao encontrado",
	}))
	cat := GetCatalog("pt-BR")
	if cat.Locale() != "pt-BR" {
		t.Fatalf("expected registered locale, got %s", cat.Locale())
	}
	if msg := cat.Format(CodeNotFound, nil); msg != "registro nao encontrado" {
		t.Fatalf("expected localized message, got %q", msg)
	}
}
