package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>API Silenciando o Canhão - Docs</title>
  <meta charset="utf-8"/>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function () {
      SwaggerUIBundle({ url: "/openapi.json", dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>`

func errorSchema() gin.H {
	return gin.H{
		"type":       "object",
		"properties": gin.H{"error": gin.H{"type": "string"}},
	}
}

func errorResponse(description string) gin.H {
	return gin.H{
		"description": description,
		"content":     gin.H{"application/json": gin.H{"schema": errorSchema()}},
	}
}

func openAPIDocument() gin.H {
	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":       "API Silenciando o Canhão",
			"description": "API de exemplo expondo DuckDB para Agentes de IA",
			"version":     "1.0.0",
		},
		"paths": gin.H{
			"/": gin.H{
				"get": gin.H{
					"summary":   "Status",
					"responses": gin.H{"200": gin.H{"description": "API online"}},
				},
			},
			"/source": gin.H{
				"get": gin.H{
					"summary": "Active data source",
					"responses": gin.H{
						"200": gin.H{"description": "Kind and path of the file queries run against"},
						"503": errorResponse("No data file found"),
					},
				},
			},
			"/query": gin.H{
				"post": gin.H{
					"summary": "Run SQL against the active data source",
					"requestBody": gin.H{
						"required": true,
						"content": gin.H{"application/json": gin.H{"schema": gin.H{
							"type":       "object",
							"required":   []string{"sql_query"},
							"properties": gin.H{"sql_query": gin.H{"type": "string"}},
						}}},
					},
					"responses": gin.H{
						"200": gin.H{
							"description": "Result rows as objects keyed by column",
							"content": gin.H{"application/json": gin.H{"schema": gin.H{
								"type":  "array",
								"items": gin.H{"type": "object"},
							}}},
						},
						"400": errorResponse("Invalid body or SQL syntax error"),
						"422": errorResponse("Query failed during execution"),
						"503": errorResponse("No data file found"),
					},
				},
			},
		},
	}
}

func (h *Handler) OpenAPIHandler(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument())
}

func (h *Handler) DocsHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}
