// Package generator produces contract content from typed form inputs. It is
// the stand-in for the external AI model: same interface, deterministic
// output.
package generator

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Metadata describes how a piece of content was produced.
type Metadata struct {
	Model           string  `json:"model"`
	PromptVersion   string  `json:"promptVersion"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

const (
	modelName     = "mock-gpt-4"
	promptVersion = "v1.0"
)

// requiredFields lists per-type inputs that must be present and non-empty.
var requiredFields = map[string][]string{
	"ARRENDAMIENTO_VIVIENDA": {"arrendador_nombre", "arrendatario_nombre", "direccion", "canon_mensual"},
	"PRESTACION_SERVICIOS":   {"contratante_nombre", "contratista_nombre", "objeto", "valor"},
	"NDA":                    {"parte_reveladora", "parte_receptora", "objeto_confidencial"},
}

// ValidateInputs checks inputs against the requirements of the contract type.
// Unknown types have no required fields. Warnings never block generation.
func ValidateInputs(contractType string, inputs map[string]any) (errs []string, warnings []string) {
	if len(inputs) == 0 {
		errs = append(errs, "No inputs provided")
	}

	for _, field := range requiredFields[contractType] {
		value, ok := inputs[field]
		if !ok || value == nil || value == "" {
			errs = append(errs, "Campo requerido: "+field)
		}
	}

	if _, ok := inputs["fecha_inicio"]; !ok {
		warnings = append(warnings, "Se recomienda especificar fecha de inicio")
	}

	return errs, warnings
}

// CacheKey derives a stable key from the contract type and inputs so repeated
// generations with identical inputs hit the cache.
func CacheKey(contractType string, inputs map[string]any) string {
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(contractType)
	for _, k := range keys {
		fmt.Fprintf(&b, ":%s=%v", k, inputs[k])
	}
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Generate renders the content for the contract type from the inputs.
func Generate(contractType string, inputs map[string]any) (string, Metadata) {
	template, ok := templates[contractType]
	if !ok {
		template = defaultTemplate
	}
	return Fill(template, inputs), Metadata{
		Model:           modelName,
		PromptVersion:   promptVersion,
		ConfidenceScore: 0.95,
	}
}

// Regenerate produces an updated revision acknowledging the feedback.
func Regenerate(feedback string) (string, Metadata) {
	content := fmt.Sprintf(`
<h1>CONTRATO (Versión Actualizada)</h1>

<p><em>Regenerado según feedback: %s</em></p>

<p>Este documento ha sido actualizado según las instrucciones proporcionadas.</p>

<div class="signatures">
<p>Para constancia se firma.</p>
</div>
`, feedback)
	return content, Metadata{
		Model:           modelName,
		PromptVersion:   promptVersion,
		ConfidenceScore: 0.90,
	}
}

// Fill substitutes {key} placeholders with input values. Numeric values also
// satisfy the thousands-grouped {key:,.0f} form used by monetary fields.
func Fill(template string, inputs map[string]any) string {
	content := template
	for key, value := range inputs {
		if num, ok := asFloat(value); ok {
			content = strings.ReplaceAll(content, "{"+key+":,.0f}", groupThousands(num))
		}
		content = strings.ReplaceAll(content, "{"+key+"}", fmt.Sprintf("%v", value))
	}
	return content
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// groupThousands formats a number with comma separators and no decimals.
func groupThousands(value float64) string {
	s := strconv.FormatFloat(value, 'f', 0, 64)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
