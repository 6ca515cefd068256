// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/projects": {
            "get": {"tags": ["project"], "summary": "List projects", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["project"], "summary": "Create project", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/projects/{project_id}": {
            "get": {"tags": ["project"], "summary": "Get project", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["project"], "summary": "Update project", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["project"], "summary": "Delete project", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/projects/{project_id}/preview": {
            "post": {"tags": ["project"], "summary": "Upload preview", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/projects/{project_id}/tasks": {
            "post": {"tags": ["task"], "summary": "Create task", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/projects/{project_id}/tasks/{task_id}": {
            "patch": {"tags": ["task"], "summary": "Update task", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["task"], "summary": "Delete task", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/projects/{project_id}/note": {
            "put": {"tags": ["note"], "summary": "Save note", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/projects/{project_id}/assist": {
            "post": {"tags": ["assist"], "summary": "Project assistance", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}, "503": {"description": "Service Unavailable"}}}
        },
        "/me/profile": {
            "get": {"tags": ["profile"], "summary": "Get profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["profile"], "summary": "Update profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Projects Hub API",
	Description:      "Personal project tracking service: projects, task checklists, notes, previews and AI assistance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
