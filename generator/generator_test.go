package generator

import (
	"strings"
	"testing"
)

func TestValidateInputs(t *testing.T) {
	errs, _ := ValidateInputs("NDA", map[string]any{
		"parte_reveladora":    "Acme S.A.S.",
		"parte_receptora":     "Juan Pérez",
		"objeto_confidencial": "Planes de producto",
	})
	if len(errs) != 0 {
		t.Errorf("complete NDA inputs produced errors: %v", errs)
	}

	errs, _ = ValidateInputs("NDA", map[string]any{
		"parte_reveladora": "Acme S.A.S.",
	})
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(errs), errs)
	}
	for _, e := range errs {
		if !strings.HasPrefix(e, "Campo requerido: ") {
			t.Errorf("unexpected error format: %q", e)
		}
	}
}

func TestValidateInputsEmpty(t *testing.T) {
	errs, _ := ValidateInputs("NDA", nil)
	if len(errs) == 0 {
		t.Error("empty inputs should produce an error")
	}
}

func TestValidateInputsWarnsOnMissingStartDate(t *testing.T) {
	_, warnings := ValidateInputs("PRESTACION_SERVICIOS", map[string]any{
		"contratante_nombre": "A",
		"contratista_nombre": "B",
		"objeto":             "Consultoría",
		"valor":              1000000,
	})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}

	_, warnings = ValidateInputs("PRESTACION_SERVICIOS", map[string]any{
		"contratante_nombre": "A",
		"contratista_nombre": "B",
		"objeto":             "Consultoría",
		"valor":              1000000,
		"fecha_inicio":       "2026-01-01",
	})
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestCacheKeyStable(t *testing.T) {
	a := CacheKey("NDA", map[string]any{"x": 1, "y": "b", "z": true})
	b := CacheKey("NDA", map[string]any{"z": true, "y": "b", "x": 1})
	if a != b {
		t.Error("cache key depends on map iteration order")
	}
	if len(a) != 32 {
		t.Errorf("cache key length = %d, want 32 hex chars", len(a))
	}

	c := CacheKey("NDA", map[string]any{"x": 2, "y": "b", "z": true})
	if a == c {
		t.Error("different inputs produced the same cache key")
	}
	d := CacheKey("TRABAJO", map[string]any{"x": 1, "y": "b", "z": true})
	if a == d {
		t.Error("different contract types produced the same cache key")
	}
}

func TestFill(t *testing.T) {
	got := Fill("Hola {nombre}, el valor es ${valor:,.0f} COP", map[string]any{
		"nombre": "Ana",
		"valor":  2500000,
	})
	want := "Hola Ana, el valor es $2,500,000 COP"
	if got != want {
		t.Errorf("Fill = %q, want %q", got, want)
	}
}

func TestFillLeavesUnknownPlaceholders(t *testing.T) {
	got := Fill("Hola {nombre}", map[string]any{"otro": "x"})
	if got != "Hola {nombre}" {
		t.Errorf("Fill = %q, want placeholder untouched", got)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500000, "2,500,000"},
		{1234567890, "1,234,567,890"},
		{-1500, "-1,500"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.in); got != tc.want {
			t.Errorf("groupThousands(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	content, metadata := Generate("ARRENDAMIENTO_VIVIENDA", map[string]any{
		"arrendador_nombre":   "Carlos Gómez",
		"arrendatario_nombre": "María Ruiz",
		"direccion":           "Calle 10 # 5-51",
		"ciudad":              "Bogotá",
		"canon_mensual":       1800000,
		"duracion_meses":      12,
		"fecha_inicio":        "2026-09-01",
	})

	if !strings.Contains(content, "CONTRATO DE ARRENDAMIENTO") {
		t.Error("content missing template heading")
	}
	if !strings.Contains(content, "Carlos Gómez") {
		t.Error("content missing filled arrendador name")
	}
	if !strings.Contains(content, "$1,800,000 COP") {
		t.Error("content missing grouped monetary amount")
	}
	if metadata.Model == "" || metadata.PromptVersion == "" {
		t.Error("metadata incomplete")
	}
	if metadata.ConfidenceScore != 0.95 {
		t.Errorf("confidence = %v, want 0.95", metadata.ConfidenceScore)
	}
}

func TestGenerateUnknownTypeFallsBack(t *testing.T) {
	content, _ := Generate("SOCIEDAD", map[string]any{"titulo": "Acta"})
	if content == "" {
		t.Fatal("unknown type produced empty content")
	}
}

func TestRegenerate(t *testing.T) {
	content, metadata := Regenerate("agregar cláusula de penalidad")
	if !strings.Contains(content, "agregar cláusula de penalidad") {
		t.Error("regenerated content does not acknowledge feedback")
	}
	if metadata.ConfidenceScore != 0.90 {
		t.Errorf("confidence = %v, want 0.90", metadata.ConfidenceScore)
	}
}
