package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &Controller{}

	r := gin.New()
	r.GET("/contracts/templates", ctrl.ListTemplates)
	r.GET("/contracts/templates/:templateId", ctrl.GetTemplate)
	r.GET("/contracts/types", ctrl.ListContractTypes)
	r.GET("/contracts/types/:type/schema", ctrl.GetContractTypeSchema)
	return r
}

func TestListTemplates(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/templates", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var templates []ContractTemplate
	if err := json.Unmarshal(w.Body.Bytes(), &templates); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(templates) != 5 {
		t.Errorf("got %d templates, want 5", len(templates))
	}
}

func TestListTemplatesFiltered(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/templates?category=laboral", nil))

	var templates []ContractTemplate
	if err := json.Unmarshal(w.Body.Bytes(), &templates); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("got %d laboral templates, want 2", len(templates))
	}
	for _, template := range templates {
		if template.Category != "laboral" {
			t.Errorf("template %s has category %s", template.ID, template.Category)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/templates/tpl_confidencialidad_v1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/templates/tpl_missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListContractTypes(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/types", nil))

	var types []ContractTypeInfo
	if err := json.Unmarshal(w.Body.Bytes(), &types); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(types) != 5 {
		t.Errorf("got %d types, want 5", len(types))
	}
}

func TestGetContractTypeSchema(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/types/NDA/schema", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var schema FormSchema
	if err := json.Unmarshal(w.Body.Bytes(), &schema); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if schema.Type != "object" || len(schema.Required) != 3 {
		t.Errorf("unexpected NDA schema: type=%s required=%v", schema.Type, schema.Required)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/contracts/types/UNKNOWN/schema", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

// Every catalog template must map to a schema when its type has one, and every
// schema's required fields must appear in its properties.
func TestSchemasAreInternallyConsistent(t *testing.T) {
	for typeID, schema := range typeSchemas {
		for _, required := range schema.Required {
			if _, ok := schema.Properties[required]; !ok {
				t.Errorf("%s: required field %s missing from properties", typeID, required)
			}
		}
		for _, field := range schema.Fields {
			if _, ok := schema.Properties[field.Name]; !ok {
				t.Errorf("%s: form field %s missing from properties", typeID, field.Name)
			}
		}
	}
}
