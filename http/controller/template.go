package controller

import (
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
)

// ContractTemplate is a catalog entry. The catalog is static for now; moving
// it to the database only makes sense once templates become user-editable.
type ContractTemplate struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Jurisdiction string   `json:"jurisdiction"`
	Variables    []string `json:"variables"`
}

// ContractTypeInfo describes a contract type for UI selection.
type ContractTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

// FormField is one input of a contract type's form.
type FormField struct {
	Name     string           `json:"name"`
	Label    string           `json:"label"`
	Type     string           `json:"type"`
	Required bool             `json:"required"`
	Options  []map[string]any `json:"options,omitempty"`
}

// FormSchema is the JSON-schema-shaped form definition for a contract type.
type FormSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]map[string]any `json:"properties"`
	Required   []string                  `json:"required"`
	Fields     []FormField               `json:"fields"`
}

var contractTemplates = []ContractTemplate{
	{
		ID:           "tpl_arrendamiento_v1",
		Name:         "Contrato de Arrendamiento de Vivienda",
		Description:  "Contrato estándar para arrendamiento de vivienda urbana en Colombia",
		Category:     "inmobiliario",
		Jurisdiction: "CO",
		Variables:    []string{"arrendador_nombre", "arrendatario_nombre", "direccion", "canon_mensual", "duracion_meses"},
	},
	{
		ID:           "tpl_prestacion_servicios_v1",
		Name:         "Contrato de Prestación de Servicios",
		Description:  "Contrato para prestación de servicios profesionales independientes",
		Category:     "laboral",
		Jurisdiction: "CO",
		Variables:    []string{"contratante_nombre", "contratista_nombre", "objeto", "valor", "duracion"},
	},
	{
		ID:           "tpl_compraventa_v1",
		Name:         "Contrato de Compraventa",
		Description:  "Contrato de compraventa de bienes muebles o inmuebles",
		Category:     "comercial",
		Jurisdiction: "CO",
		Variables:    []string{"vendedor_nombre", "comprador_nombre", "bien", "precio", "forma_pago"},
	},
	{
		ID:           "tpl_confidencialidad_v1",
		Name:         "Acuerdo de Confidencialidad (NDA)",
		Description:  "Acuerdo de no divulgación de información confidencial",
		Category:     "comercial",
		Jurisdiction: "CO",
		Variables:    []string{"parte_reveladora", "parte_receptora", "objeto_confidencial", "duracion"},
	},
	{
		ID:           "tpl_trabajo_v1",
		Name:         "Contrato de Trabajo",
		Description:  "Contrato laboral a término fijo o indefinido",
		Category:     "laboral",
		Jurisdiction: "CO",
		Variables:    []string{"empleador_nombre", "empleado_nombre", "cargo", "salario", "tipo_contrato"},
	},
}

var contractTypes = []ContractTypeInfo{
	{ID: "ARRENDAMIENTO_VIVIENDA", Name: "Arrendamiento de Vivienda", Description: "Contratos para alquiler de inmuebles residenciales", Category: "inmobiliario", Icon: "home"},
	{ID: "PRESTACION_SERVICIOS", Name: "Prestación de Servicios", Description: "Contratos para servicios profesionales independientes", Category: "laboral", Icon: "briefcase"},
	{ID: "COMPRAVENTA", Name: "Compraventa", Description: "Contratos para compra y venta de bienes", Category: "comercial", Icon: "shopping-cart"},
	{ID: "NDA", Name: "Confidencialidad (NDA)", Description: "Acuerdos de no divulgación", Category: "comercial", Icon: "lock"},
	{ID: "TRABAJO", Name: "Contrato de Trabajo", Description: "Contratos laborales formales", Category: "laboral", Icon: "users"},
}

var typeSchemas = map[string]FormSchema{
	"ARRENDAMIENTO_VIVIENDA": {
		Type: "object",
		Properties: map[string]map[string]any{
			"arrendador_nombre":   {"type": "string", "title": "Nombre del Arrendador"},
			"arrendador_cedula":   {"type": "string", "title": "Cédula del Arrendador"},
			"arrendatario_nombre": {"type": "string", "title": "Nombre del Arrendatario"},
			"arrendatario_cedula": {"type": "string", "title": "Cédula del Arrendatario"},
			"direccion":           {"type": "string", "title": "Dirección del Inmueble"},
			"ciudad":              {"type": "string", "title": "Ciudad"},
			"canon_mensual":       {"type": "number", "title": "Canon Mensual (COP)"},
			"duracion_meses":      {"type": "integer", "title": "Duración (meses)"},
			"fecha_inicio":        {"type": "string", "format": "date", "title": "Fecha de Inicio"},
		},
		Required: []string{"arrendador_nombre", "arrendatario_nombre", "direccion", "canon_mensual", "duracion_meses"},
		Fields: []FormField{
			{Name: "arrendador_nombre", Label: "Nombre del Arrendador", Type: "text", Required: true},
			{Name: "arrendador_cedula", Label: "Cédula del Arrendador", Type: "text", Required: true},
			{Name: "arrendatario_nombre", Label: "Nombre del Arrendatario", Type: "text", Required: true},
			{Name: "arrendatario_cedula", Label: "Cédula del Arrendatario", Type: "text", Required: true},
			{Name: "direccion", Label: "Dirección del Inmueble", Type: "textarea", Required: true},
			{Name: "ciudad", Label: "Ciudad", Type: "text", Required: true},
			{Name: "canon_mensual", Label: "Canon Mensual (COP)", Type: "number", Required: true},
			{Name: "duracion_meses", Label: "Duración (meses)", Type: "number", Required: true},
			{Name: "fecha_inicio", Label: "Fecha de Inicio", Type: "date", Required: true},
		},
	},
	"PRESTACION_SERVICIOS": {
		Type: "object",
		Properties: map[string]map[string]any{
			"contratante_nombre": {"type": "string", "title": "Nombre del Contratante"},
			"contratante_nit":    {"type": "string", "title": "NIT/Cédula del Contratante"},
			"contratista_nombre": {"type": "string", "title": "Nombre del Contratista"},
			"contratista_cedula": {"type": "string", "title": "Cédula del Contratista"},
			"objeto":             {"type": "string", "title": "Objeto del Contrato"},
			"valor":              {"type": "number", "title": "Valor del Contrato (COP)"},
			"duracion":           {"type": "string", "title": "Duración"},
			"fecha_inicio":       {"type": "string", "format": "date", "title": "Fecha de Inicio"},
		},
		Required: []string{"contratante_nombre", "contratista_nombre", "objeto", "valor"},
		Fields: []FormField{
			{Name: "contratante_nombre", Label: "Nombre del Contratante", Type: "text", Required: true},
			{Name: "contratante_nit", Label: "NIT/Cédula del Contratante", Type: "text", Required: true},
			{Name: "contratista_nombre", Label: "Nombre del Contratista", Type: "text", Required: true},
			{Name: "contratista_cedula", Label: "Cédula del Contratista", Type: "text", Required: true},
			{Name: "objeto", Label: "Objeto del Contrato", Type: "textarea", Required: true},
			{Name: "valor", Label: "Valor del Contrato (COP)", Type: "number", Required: true},
			{Name: "duracion", Label: "Duración", Type: "text", Required: true},
			{Name: "fecha_inicio", Label: "Fecha de Inicio", Type: "date", Required: true},
		},
	},
	"COMPRAVENTA": {
		Type: "object",
		Properties: map[string]map[string]any{
			"vendedor_nombre":  {"type": "string", "title": "Nombre del Vendedor"},
			"vendedor_cedula":  {"type": "string", "title": "Cédula del Vendedor"},
			"comprador_nombre": {"type": "string", "title": "Nombre del Comprador"},
			"comprador_cedula": {"type": "string", "title": "Cédula del Comprador"},
			"bien":             {"type": "string", "title": "Descripción del Bien"},
			"precio":           {"type": "number", "title": "Precio (COP)"},
			"forma_pago":       {"type": "string", "title": "Forma de Pago"},
		},
		Required: []string{"vendedor_nombre", "comprador_nombre", "bien", "precio"},
		Fields: []FormField{
			{Name: "vendedor_nombre", Label: "Nombre del Vendedor", Type: "text", Required: true},
			{Name: "vendedor_cedula", Label: "Cédula del Vendedor", Type: "text", Required: true},
			{Name: "comprador_nombre", Label: "Nombre del Comprador", Type: "text", Required: true},
			{Name: "comprador_cedula", Label: "Cédula del Comprador", Type: "text", Required: true},
			{Name: "bien", Label: "Descripción del Bien", Type: "textarea", Required: true},
			{Name: "precio", Label: "Precio (COP)", Type: "number", Required: true},
			{Name: "forma_pago", Label: "Forma de Pago", Type: "text", Required: true},
		},
	},
	"NDA": {
		Type: "object",
		Properties: map[string]map[string]any{
			"parte_reveladora":    {"type": "string", "title": "Parte Reveladora"},
			"parte_receptora":     {"type": "string", "title": "Parte Receptora"},
			"objeto_confidencial": {"type": "string", "title": "Información Confidencial"},
			"duracion":            {"type": "string", "title": "Duración de la Confidencialidad"},
		},
		Required: []string{"parte_reveladora", "parte_receptora", "objeto_confidencial"},
		Fields: []FormField{
			{Name: "parte_reveladora", Label: "Parte Reveladora", Type: "text", Required: true},
			{Name: "parte_receptora", Label: "Parte Receptora", Type: "text", Required: true},
			{Name: "objeto_confidencial", Label: "Información Confidencial", Type: "textarea", Required: true},
			{Name: "duracion", Label: "Duración de la Confidencialidad", Type: "text", Required: true},
		},
	},
	"TRABAJO": {
		Type: "object",
		Properties: map[string]map[string]any{
			"empleador_nombre": {"type": "string", "title": "Nombre del Empleador"},
			"empleador_nit":    {"type": "string", "title": "NIT del Empleador"},
			"empleado_nombre":  {"type": "string", "title": "Nombre del Empleado"},
			"empleado_cedula":  {"type": "string", "title": "Cédula del Empleado"},
			"cargo":            {"type": "string", "title": "Cargo"},
			"salario":          {"type": "number", "title": "Salario Mensual (COP)"},
			"tipo_contrato":    {"type": "string", "enum": []string{"INDEFINIDO", "FIJO", "OBRA_LABOR"}, "title": "Tipo de Contrato"},
			"fecha_inicio":     {"type": "string", "format": "date", "title": "Fecha de Inicio"},
		},
		Required: []string{"empleador_nombre", "empleado_nombre", "cargo", "salario", "tipo_contrato"},
		Fields: []FormField{
			{Name: "empleador_nombre", Label: "Nombre del Empleador", Type: "text", Required: true},
			{Name: "empleador_nit", Label: "NIT del Empleador", Type: "text", Required: true},
			{Name: "empleado_nombre", Label: "Nombre del Empleado", Type: "text", Required: true},
			{Name: "empleado_cedula", Label: "Cédula del Empleado", Type: "text", Required: true},
			{Name: "cargo", Label: "Cargo", Type: "text", Required: true},
			{Name: "salario", Label: "Salario Mensual (COP)", Type: "number", Required: true},
			{Name: "tipo_contrato", Label: "Tipo de Contrato", Type: "select", Required: true, Options: []map[string]any{
				{"value": "INDEFINIDO", "label": "Indefinido"},
				{"value": "FIJO", "label": "Término Fijo"},
				{"value": "OBRA_LABOR", "label": "Obra o Labor"},
			}},
			{Name: "fecha_inicio", Label: "Fecha de Inicio", Type: "date", Required: true},
		},
	},
}

func (ctrl *Controller) ListTemplates(c *gin.Context) {
	category := c.Query("category")
	jurisdiction := c.Query("jurisdiction")

	result := make([]ContractTemplate, 0, len(contractTemplates))
	for _, template := range contractTemplates {
		if category != "" && template.Category != category {
			continue
		}
		if jurisdiction != "" && template.Jurisdiction != jurisdiction {
			continue
		}
		result = append(result, template)
	}

	utils.JSON200(c, result)
}

func (ctrl *Controller) GetTemplate(c *gin.Context) {
	templateID := c.Param("templateId")
	for _, template := range contractTemplates {
		if template.ID == templateID {
			utils.JSON200(c, template)
			return
		}
	}
	utils.JSON404(c, "Template "+templateID+" not found")
}

func (ctrl *Controller) ListContractTypes(c *gin.Context) {
	utils.JSON200(c, contractTypes)
}

func (ctrl *Controller) GetContractTypeSchema(c *gin.Context) {
	typeID := c.Param("type")
	schema, ok := typeSchemas[typeID]
	if !ok {
		utils.JSON404(c, "Schema for type "+typeID+" not found")
		return
	}
	utils.JSON200(c, schema)
}
