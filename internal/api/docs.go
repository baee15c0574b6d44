// Package api holds the HTTP contract of the checkout proxy.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "paths": {
        "/api/create-order": {
            "post": {
                "operationId": "createOrder",
                "summary": "Create a PayPal order for the configured purchase",
                "responses": {
                    "200": {
                        "description": "Order created; the processor body is relayed unchanged",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "Failure envelope",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/capture-order": {
            "post": {
                "operationId": "captureOrder",
                "summary": "Capture an order once the buyer has approved it",
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": false,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "orderID": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Capture result relayed from the processor",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Missing orderID or order not approved",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "default": {
                        "description": "Failure envelope",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/orders/{orderID}": {
            "get": {
                "operationId": "getOrder",
                "summary": "Look up an order's current state",
                "parameters": [
                    {
                        "in": "path",
                        "name": "orderID",
                        "required": true,
                        "type": "string",
                        "minLength": 1
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Order relayed from the processor",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "Failure envelope",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "operationId": "health",
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "Process is serving"
                    }
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "required": [
                "error"
            ],
            "properties": {
                "error": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "details": {
                    "type": "object"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "checkout-proxy",
	Description:      "Server-side proxy that creates and captures PayPal checkout orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
