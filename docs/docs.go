// Package docs registers the swagger document served at /api/swagger.
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
        "/contact": {
            "post": {
                "description": "Validates the message and relays it by email when mail is configured. Relay problems still answer 200 with a warning or error field.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit Contact Form",
                "parameters": [
                    {
                        "description": "Contact Form Data",
                        "name": "contact",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.ContactMessage"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ContactResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.ContactErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.ContactErrorResponse"}}
                }
            }
        },
        "/contact/test": {
            "get": {
                "description": "Reports whether the mail secrets are set. No side effects.",
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Contact configuration probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ContactDiagnostics"}}
                }
            }
        },
        "/portfolio/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Site owner profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/portfolio/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "List projects",
                "parameters": [
                    {"type": "string", "description": "blockchain, fullstack, ml or security", "name": "category", "in": "query"},
                    {"type": "boolean", "description": "Only featured (true) or non-featured (false) projects", "name": "featured", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/portfolio/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Get one project",
                "parameters": [{"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/portfolio/skills": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "List skills",
                "parameters": [{"type": "string", "description": "frontend, backend, blockchain, ml or tools", "name": "category", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/portfolio/skills/grouped": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Skills grouped by category",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/portfolio/journey": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Education, work and certification timeline",
                "parameters": [{"type": "string", "description": "education, work or certification", "name": "type", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ContactMessage": {
            "type": "object",
            "required": ["email", "message", "name"],
            "properties": {
                "email": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "v1.ContactDiagnostics": {
            "type": "object",
            "properties": {
                "env": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "v1.ContactErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "v1.ContactResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "messageId": {"type": "string"},
                "warning": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Portfolio Backend API",
	Description:      "Contact form relay and portfolio content for the personal site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
