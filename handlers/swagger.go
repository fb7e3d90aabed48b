package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves API docs for the catalog service.
// - GET /swagger/index.html  -> Swagger UI page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>course-catalog — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "course-catalog", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "CourseInput": {"type":"object","required":["title","createdBy"],"properties":{"title":{"type":"string"},"createdBy":{"type":"string"},"description":{"type":"string"},"aliases":{"type":"array","items":{"type":"string"}},"prerequisites":{"type":"array","items":{"type":"string"}}}},
      "ReviewInput": {"type":"object","required":["createdBy","overall","difficulty","usefulness","major"],"properties":{"courseId":{"type":"string"},"createdBy":{"type":"string"},"overall":{"type":"number"},"difficulty":{"type":"number"},"usefulness":{"type":"number"},"major":{"type":"string"},"anonymous":{"type":"boolean"},"additionalComments":{"type":"string"},"tips":{"type":"string"},"professor":{"type":"string"}}},
      "ReviewPatch": {"type":"object","properties":{"courseId":{"type":"string"},"overall":{"type":"number"},"difficulty":{"type":"number"},"usefulness":{"type":"number"},"major":{"type":"string"},"anonymous":{"type":"boolean"},"additionalComments":{"type":"string"},"tips":{"type":"string"},"professor":{"type":"string"}}}
    }
  },
  "paths": {
    "/api/courses": {
      "get": { "summary": "List all courses", "responses": { "200": { "description": "courses" } } },
      "post": { "summary": "Create a course", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/CourseInput"} } } }, "responses": { "201": { "description": "created id" }, "400": { "description": "validation failed" } } }
    },
    "/api/courses/search": {
      "get": { "summary": "Full-text course search", "parameters": [{"name":"text","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "matching courses" } } }
    },
    "/api/courses/{id}": {
      "get": { "summary": "Get a course by id", "responses": { "200": { "description": "course" }, "404": { "description": "course not found" } } },
      "delete": { "summary": "Delete a course and its reviews", "responses": { "200": { "description": "deleted" }, "404": { "description": "course not found" } } }
    },
    "/api/courses/{id}/reviews": {
      "post": { "summary": "Add a review to a course", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ReviewInput"} } } }, "responses": { "201": { "description": "created id" }, "400": { "description": "validation failed" }, "404": { "description": "course not found" } } }
    },
    "/api/courses/{id}/reviews/{reviewId}": {
      "put": { "summary": "Partially update a review", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ReviewPatch"} } } }, "responses": { "200": { "description": "updated" }, "404": { "description": "course or review not found" } } },
      "delete": { "summary": "Delete a review", "responses": { "200": { "description": "deleted" }, "404": { "description": "course or review not found" } } }
    },
    "/api/reviews": {
      "post": { "summary": "Add a review (courseId in body)", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ReviewInput"} } } }, "responses": { "201": { "description": "created id" } } }
    },
    "/api/reviews/{id}": {
      "put": { "summary": "Update a review (courseId in body)", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ReviewPatch"} } } }, "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a review (courseId in body or query)", "responses": { "200": { "description": "deleted" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
