// Package docs holds the swagger description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "Backend Team"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/rooms": {
            "post": {
                "tags": ["Room"],
                "summary": "Create new room",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/http.CreateRoomRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/rooms/{code}": {
            "get": {
                "tags": ["Room"],
                "summary": "Get room state",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "code", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/{code}/legal-moves": {
            "get": {
                "tags": ["Game"],
                "summary": "Get legal moves of a piece",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "code", "required": true},
                    {"type": "integer", "in": "query", "name": "row", "required": true},
                    {"type": "integer", "in": "query", "name": "col", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Out of bounds"}}
            }
        },
        "/rooms/{code}/move": {
            "post": {
                "tags": ["Game"],
                "summary": "Move a piece",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "code", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Unknown seat"},
                    "409": {"description": "Not your turn"},
                    "422": {"description": "Illegal move"}
                }
            }
        },
        "/rooms/{code}/restart": {
            "post": {
                "tags": ["Room"],
                "summary": "Restart a room",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "code", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/config/rules": {
            "get": {"tags": ["Config"], "summary": "Get board rules", "responses": {"200": {"description": "OK"}}}
        },
        "/config/terrain": {
            "get": {"tags": ["Config"], "summary": "Get board terrain", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "http.CreateRoomRequest": {
            "type": "object",
            "properties": {
                "player0": {"type": "string"},
                "player1": {"type": "string"}
            }
        },
        "http.MoveRequest": {
            "type": "object",
            "required": ["seatId", "fromRow", "fromCol", "toRow", "toCol"],
            "properties": {
                "seatId": {"type": "string"},
                "fromRow": {"type": "integer"},
                "fromCol": {"type": "integer"},
                "toRow": {"type": "integer"},
                "toCol": {"type": "integer"}
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
	Title:            "Jungle API",
	Description:      "REST and websocket API for two-seat Jungle rooms (Go + Gin)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
