// Package docs registra el documento OpenAPI que sirve /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/caregivers/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["caregivers"],
                "summary": "Listar caregivers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/caregivers.Caregiver"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/caregivers/{caregiver_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["caregivers"],
                "summary": "Obtener caregiver",
                "parameters": [
                    {"type": "string", "description": "ID del caregiver", "name": "caregiver_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/caregivers.Caregiver"}},
                    "404": {"description": "caregiver not found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/admissions/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admissions"],
                "summary": "Listar admisiones paginadas",
                "parameters": [
                    {"type": "integer", "description": "Número de página (default 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "admissions + meta", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "page must be 1 or greater", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/admissions/most_used": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admissions"],
                "summary": "Valores más frecuentes de una columna",
                "parameters": [
                    {"type": "string", "description": "Columna a agrupar", "name": "field", "in": "query"},
                    {"type": "integer", "description": "Cantidad de grupos (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "most_used_<field>s", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/admissions/{hadm_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admissions"],
                "summary": "Obtener admisión",
                "parameters": [
                    {"type": "integer", "description": "ID de la admisión", "name": "hadm_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/admissions.Admission"}},
                    "404": {"description": "admission not found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/patients/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Listar pacientes paginados",
                "parameters": [
                    {"type": "integer", "description": "Número de página (default 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "patients + meta", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "page must be 1 or greater", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/patients/most_used": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Valores más frecuentes de una columna",
                "parameters": [
                    {"type": "string", "description": "Columna a agrupar", "name": "field", "in": "query"},
                    {"type": "integer", "description": "Cantidad de grupos (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "most_used_<field>s", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/patients/{subject_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Obtener paciente",
                "parameters": [
                    {"type": "integer", "description": "ID del paciente", "name": "subject_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.Patient"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/prescriptions/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Listar prescripciones paginadas",
                "parameters": [
                    {"type": "integer", "description": "Número de página (default 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "prescriptions + meta", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "page must be 1 or greater", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/prescriptions/most_used": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Drogas más usadas",
                "parameters": [
                    {"type": "string", "description": "Columna a agrupar (default drug)", "name": "field", "in": "query"},
                    {"type": "integer", "description": "Cantidad de grupos (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "most_used_drugs: [{drug, count}]", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/prescriptions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Obtener prescripción",
                "parameters": [
                    {"type": "integer", "description": "ID de la prescripción", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/prescriptions.Prescription"}},
                    "404": {"description": "prescription not found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "respond.Envelope": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "caregivers.Caregiver": {
            "type": "object",
            "properties": {
                "caregiver_id": {"type": "string"}
            }
        },
        "admissions.Admission": {
            "type": "object",
            "properties": {
                "subject_id": {"type": "integer"},
                "hadm_id": {"type": "integer"},
                "admittime": {"type": "string"},
                "dischtime": {"type": "string"},
                "deathtime": {"type": "string"},
                "admission_type": {"type": "string"},
                "admit_provider_id": {"type": "string"},
                "admission_location": {"type": "string"},
                "discharge_location": {"type": "string"},
                "insurance": {"type": "string"},
                "language": {"type": "string"},
                "marital_status": {"type": "string"},
                "race": {"type": "string"},
                "edregtime": {"type": "string"},
                "edouttime": {"type": "string"},
                "hospital_expire_flag": {"type": "integer"}
            }
        },
        "patients.Patient": {
            "type": "object",
            "properties": {
                "subject_id": {"type": "integer"},
                "gender": {"type": "string"},
                "anchor_age": {"type": "integer"},
                "anchor_year": {"type": "integer"},
                "anchor_year_group": {"type": "string"},
                "dod": {"type": "string"}
            }
        },
        "prescriptions.Prescription": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "subject_id": {"type": "integer"},
                "hadm_id": {"type": "integer"},
                "pharmacy_id": {"type": "integer"},
                "poe_id": {"type": "string"},
                "poe_seq": {"type": "integer"},
                "order_provider_id": {"type": "string"},
                "starttime": {"type": "string"},
                "stoptime": {"type": "string"},
                "drug_type": {"type": "string"},
                "drug": {"type": "string"},
                "formulary_drug_cd": {"type": "string"},
                "gsn": {"type": "string"},
                "ndc": {"type": "string"},
                "prod_strength": {"type": "string"},
                "form_rx": {"type": "string"},
                "dose_val_rx": {"type": "string"},
                "dose_unit_rx": {"type": "string"},
                "form_val_disp": {"type": "string"},
                "form_unit_disp": {"type": "string"},
                "doses_per_24_hrs": {"type": "number"},
                "route": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Clinical Records API",
	Description:      "API de sólo lectura sobre caregivers, admisiones, pacientes y prescripciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
