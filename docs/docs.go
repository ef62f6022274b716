// Package docs is generated by swaggo/swag from the godoc annotations in
// internal/controller. Regenerate with: swag init -g cmd/main.go
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
        "/answers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Answers"],
                "summary": "Get an answer",
                "parameters": [
                    {"type": "integer", "description": "Answer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AnswerResponse"}},
                    "404": {"description": "Answer not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Answers"],
                "summary": "Delete an answer",
                "parameters": [
                    {"type": "integer", "description": "Answer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Answer not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/": {
            "get": {
                "description": "Returns every question in creation order, without answers.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "List all questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Adds a new question. The text may also be passed as the \"text\" query parameter.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question text (max 255 characters)", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateQuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get a question with its answers",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionDetailResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the question together with all of its answers.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Invalid ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}/answers/": {
            "post": {
                "description": "user_id is optional; a random UUID is assigned when it is omitted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Answers"],
                "summary": "Add an answer to a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer text and optional user UUID", "name": "answer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AnswerResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "question_id": {"type": "integer"},
                "text": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "dto.CreateAnswerRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "maxLength": 255},
                "user_id": {"type": "string"}
            }
        },
        "dto.CreateQuestionRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "maxLength": 255}
            }
        },
        "dto.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.QuestionDetailResponse": {
            "type": "object",
            "properties": {
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerResponse"}},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "text": {"type": "string"}
            }
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "text": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Q&A API",
	Description:      "Questions and their answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
