// Package api contains the OpenAPI documentation of the backend, served at /docs.
package api

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
        "/v1/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transaction",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Transactions"],
                "summary": "Delete transaction",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/transactions/import": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Import"],
                "summary": "Import transactions",
                "parameters": [{"type": "file", "description": "File to import", "name": "file", "in": "formData", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/transactions/export": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["Export"],
                "summary": "Export transactions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get categories",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
