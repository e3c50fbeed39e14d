// Package docs registers the OpenAPI document served under /docs.
//
// Keep in sync with the handler annotations:
//
//	swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "Cartola Scouts"
		},
		"license": {
			"name": "MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/players": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"players"
				],
				"summary": "List players",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "name",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Name substring"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/players/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"players"
				],
				"summary": "Get player",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "integer",
						"required": true,
						"description": "Player ID"
					}
				]
			}
		},
		"/players/{id}/rounds": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"players"
				],
				"summary": "Player round history",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "integer",
						"required": true,
						"description": "Player ID"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/compare": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"players"
				],
				"summary": "Compare players",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id1",
						"in": "query",
						"type": "integer",
						"required": true,
						"description": "First player ID"
					},
					{
						"name": "id2",
						"in": "query",
						"type": "integer",
						"required": true,
						"description": "Second player ID"
					}
				]
			}
		},
		"/rankings/round": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"rankings"
				],
				"summary": "Round ranking",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": true,
						"description": "Round number"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/rounds/latest": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"rounds"
				],
				"summary": "Latest round",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				}
			}
		},
		"/clubs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"clubs"
				],
				"summary": "List clubs",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/clubs/{club}/stats": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"clubs"
				],
				"summary": "Club stats",
				"description": "Every player of the club ordered by average fantasy points. The whole squad is returned; there is no limit.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					}
				},
				"parameters": [
					{
						"name": "club",
						"in": "path",
						"type": "string",
						"required": true,
						"description": "Club name"
					}
				]
			}
		},
		"/scouts/offense/top-assists": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top assists",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/defense/top-tackles": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top tackles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/offense/top-goals": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top goals",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/offense/top-dangerous-shots": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top dangerous shots",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/offense/top-fouls-suffered": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top fouls suffered",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/defense/top-fouls-committed": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top fouls committed",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/goalkeepers/top-difficult-saves": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top difficult saves",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/goalkeepers/top-penalty-saves": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top penalty saves",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		},
		"/scouts/defense/top-clean-sheets": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"scouts"
				],
				"summary": "Top clean sheets",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "round",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Round number; omit for the whole season"
					},
					{
						"name": "club",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Club name"
					},
					{
						"name": "position",
						"in": "query",
						"type": "string",
						"required": false,
						"description": "Position label"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "Maximum rows (1-1000)"
					}
				]
			}
		}
	},
	"definitions": {
		"respond.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "object",
					"properties": {
						"code": {
							"type": "string"
						},
						"message": {
							"type": "string"
						},
						"detail": {
							"type": "string"
						}
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Cartola Scouts API",
	Description:      "Read-only Cartola FC scouting API: season ranking, round history, player comparison and scout leaderboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
