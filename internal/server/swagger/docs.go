// Package swagger registers the API's swagger spec with swag's doc
// registry so that httpSwagger.Handler() has something to serve. It is
// hand-authored rather than generated by the swag CLI, since no
// toolchain can be invoked to run it here, but follows the same
// registration shape swag init would produce.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
	"swagger": "2.0",
	"info": {
		"title": "wikiparse API",
		"description": "Parsed-corpus query and render API.",
		"version": "1.0"
	},
	"basePath": "/api",
	"paths": {
		"/health": {
			"get": {
				"tags": ["health"],
				"summary": "Health check",
				"produces": ["application/json"],
				"responses": {"200": {"description": "OK"}}
			}
		},
		"/parse": {
			"post": {
				"tags": ["parse"],
				"summary": "Parse raw wikitext sent as the request body",
				"consumes": ["text/plain"],
				"produces": ["application/json"],
				"responses": {"200": {"description": "OK"}}
			}
		},
		"/pages": {
			"get": {
				"tags": ["pages"],
				"summary": "List ingested page titles",
				"produces": ["application/json"],
				"responses": {"200": {"description": "OK"}}
			}
		},
		"/pages/{title}": {
			"get": {
				"tags": ["pages"],
				"summary": "Get one page's parsed summary",
				"produces": ["application/json"],
				"parameters": [{"name": "title", "in": "path", "required": true, "type": "string"}],
				"responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
			}
		},
		"/pages/{title}/html": {
			"get": {
				"tags": ["pages"],
				"summary": "Render a page to HTML",
				"produces": ["text/html"],
				"parameters": [{"name": "title", "in": "path", "required": true, "type": "string"}],
				"responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
			}
		},
		"/query/templates/{name}": {
			"get": {
				"tags": ["query"],
				"summary": "List pages that invoke a template",
				"produces": ["application/json"],
				"parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
				"responses": {"200": {"description": "OK"}}
			}
		},
		"/query/links/{target}": {
			"get": {
				"tags": ["query"],
				"summary": "List pages that link to a target",
				"produces": ["application/json"],
				"parameters": [{"name": "target", "in": "path", "required": true, "type": "string"}],
				"responses": {"200": {"description": "OK"}}
			}
		},
		"/query/categories/{category}": {
			"get": {
				"tags": ["query"],
				"summary": "List pages tagged with a category",
				"produces": ["application/json"],
				"parameters": [{"name": "category", "in": "path", "required": true, "type": "string"}],
				"responses": {"200": {"description": "OK"}}
			}
		},
		"/query/pages/{title}/headers": {
			"get": {
				"tags": ["query"],
				"summary": "Get a page's header outline",
				"produces": ["application/json"],
				"parameters": [{"name": "title", "in": "path", "required": true, "type": "string"}],
				"responses": {"200": {"description": "OK"}}
			}
		}
	}
}`

// SwaggerInfo holds exported swagger spec metadata, matched against
// the registered doc by swag's registry key.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "wikiparse API",
	Description:      "Parsed-corpus query and render API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
