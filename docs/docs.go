// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go
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
        "/api/v1/calculate": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Compare banking the current haul against pushing to the target floor",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Calculate EV",
                "parameters": [
                    {
                        "description": "Squad situation",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.CalculatorInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CalculationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/roadmap": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["roadmap"],
                "summary": "Run plan",
                "parameters": [
                    {"type": "string", "default": "balanced", "description": "safe, balanced or greedy", "name": "style", "in": "query"},
                    {"type": "boolean", "description": "Playing with a squad", "name": "squad", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RoadmapResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/risk-table": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Risk table",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/classes": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Classes",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/classes/unlock-path": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Class unlock path",
                "parameters": [
                    {"type": "integer", "description": "Gold on hand", "name": "gold", "in": "query"},
                    {"type": "string", "default": "steady", "description": "steady, combat, runner or support", "name": "style", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/monsters": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Monsters",
                "parameters": [
                    {"type": "integer", "description": "Only monsters seen on this floor", "name": "floor", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/readyz": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/version": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Build version", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "domain.CalculatorInput": {
            "type": "object",
            "properties": {
                "current_floor": {"type": "integer"},
                "target_floor": {"type": "integer"},
                "alive_players": {"type": "integer"},
                "player_class": {"type": "string", "enum": ["Odd Jobber", "Veterinarian", "Chef", "Sprinter", "Baseballer", "Porter"]},
                "inventory_value": {"type": "number"},
                "time_left_tier": {"type": "string", "enum": ["HIGH", "MID", "LOW"]},
                "risk_preference": {"type": "string", "enum": ["SAFE", "NORMAL", "RISKY"]}
            }
        },
        "domain.CalculationResult": {
            "type": "object",
            "properties": {
                "death_prob": {"type": "number"},
                "survival_rate": {"type": "number"},
                "estimated_gain": {"type": "integer"},
                "ev_stay": {"type": "number"},
                "ev_go": {"type": "number"},
                "diff": {"type": "number"},
                "diff_ratio": {"type": "number"},
                "decision": {"type": "string", "enum": ["EVACUATE", "HOLD", "DEEPER"]},
                "decision_title": {"type": "string"},
                "tone": {"type": "string", "enum": ["danger", "neutral", "success"]},
                "reasoning": {"type": "string"},
                "notes": {"type": "array", "items": {"type": "string"}},
                "danger_label": {"type": "string"}
            }
        },
        "domain.RunPlan": {
            "type": "object",
            "properties": {
                "run_index": {"type": "integer"},
                "target_floor": {"type": "integer"},
                "focus": {"type": "string"},
                "tips": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.RoadmapResponse": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "has_squad": {"type": "boolean"},
                "plan": {"type": "array", "items": {"$ref": "#/definitions/domain.RunPlan"}}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Deadly Delivery EV API",
	Description:      "Expected-value advice for elevator votes, run plans and class unlocks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
