package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Leads API",
        "description": "Student enrollment tracker: leads, career and subject enrollments, flattened lead records",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Root", "description": "Service information"},
        {"name": "Catalog", "description": "Career and subject catalog"},
        {"name": "Leads", "description": "Lead (student) records"},
        {"name": "Enroll", "description": "Career and subject enrollment"},
        {"name": "Records", "description": "Complete flattened lead records"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Root"],
                "summary": "Service information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Welcome"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/careers": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List careers and their offered subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CareerOffering"}}}
                }
            }
        },
        "/leads": {
            "get": {
                "tags": ["Leads"],
                "summary": "List all leads",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Lead"}}}
                }
            },
            "post": {
                "tags": ["Leads"],
                "summary": "Create a lead",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLead"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LeadID"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/leads/{id}": {
            "get": {
                "tags": ["Leads"],
                "summary": "Get a lead by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "minimum": 1}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Lead"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/enroll/career": {
            "post": {
                "tags": ["Enroll"],
                "summary": "Enroll a student in a career",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollCareer"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ID"}},
                    "404": {"description": "Student or career not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/enroll/subject": {
            "post": {
                "tags": ["Enroll"],
                "summary": "Enroll a student in a subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollSubject"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ID"}},
                    "404": {"description": "Student, career or subject not found", "schema": {"$ref": "#/definitions/Detail"}},
                    "412": {"description": "Student not enrolled in the career", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/records": {
            "get": {
                "tags": ["Records"],
                "summary": "List flattened records",
                "parameters": [
                    {"name": "start", "in": "query", "type": "integer", "minimum": 0, "default": 0},
                    {"name": "limit", "in": "query", "type": "integer", "minimum": 1, "default": 10}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LeadRecord"}}}
                }
            },
            "post": {
                "tags": ["Records"],
                "summary": "Load a complete lead record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoadRecord"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ID"}},
                    "404": {"description": "Career or subject not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "tags": ["Records"],
                "summary": "Get a flattened record by enrollment id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "minimum": 1}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LeadRecord"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/records/export": {
            "get": {
                "tags": ["Records"],
                "summary": "Export all records as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered document"}
                }
            }
        }
    },
    "definitions": {
        "Welcome": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "detail": {"type": "string"},
                "docs": {"type": "string"}
            }
        },
        "CareerOffering": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "subjects": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "integer"},
                            "name": {"type": "string"},
                            "class_duration": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "CreateLead": {
            "type": "object",
            "required": ["dni", "name"],
            "properties": {
                "dni": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "Lead": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "dni": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "EnrollCareer": {
            "type": "object",
            "required": ["student_dni", "career_name", "year_enroll"],
            "properties": {
                "student_dni": {"type": "string"},
                "career_name": {"type": "string"},
                "year_enroll": {"type": "integer"}
            }
        },
        "EnrollSubject": {
            "type": "object",
            "required": ["student_dni", "career_name", "subject_name", "enroll_times"],
            "properties": {
                "student_dni": {"type": "string"},
                "career_name": {"type": "string"},
                "subject_name": {"type": "string"},
                "enroll_times": {"type": "integer"}
            }
        },
        "LoadRecord": {
            "type": "object",
            "required": ["dni", "name", "subject", "career", "enroll_times", "year_enroll"],
            "properties": {
                "dni": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "subject": {"type": "string"},
                "career": {"type": "string"},
                "enroll_times": {"type": "integer"},
                "year_enroll": {"type": "integer"}
            }
        },
        "LeadRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "dni": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "subject": {"type": "string"},
                "class_duration": {"type": "integer"},
                "enroll_times": {"type": "integer"},
                "career": {"type": "string"},
                "year_enroll": {"type": "integer"}
            }
        },
        "LeadID": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"}
            }
        },
        "ID": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}
            }
        },
        "Detail": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
