package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Mini Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Mini Ledger API",
    "version": "1.0.0"
  },
  "components": {
    "schemas": {
      "Amount": {
        "oneOf": [
          {"type": "number"},
          {"type": "string", "pattern": "^-?[0-9]+(\\.[0-9]+)?$"}
        ],
        "description": "Positive amount with at most 2 decimal places, not above the configured maximum"
      },
      "Balance": {
        "type": "object",
        "properties": {
          "balance": {"type": "number"}
        }
      },
      "Error": {
        "type": "object",
        "properties": {
          "error": {"type": "string"}
        }
      }
    },
    "parameters": {
      "AccountNumber": {
        "name": "accountNumber",
        "in": "path",
        "required": true,
        "schema": {"type": "string", "pattern": "^[0-9]{4}$"}
      }
    }
  },
  "paths": {
    "/accounts": {
      "post": {
        "summary": "Create account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "balance": {"$ref": "#/components/schemas/Amount"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": {
                    "account_number": {"type": "string"},
                    "balance": {"type": "number"}
                  }
                }
              }
            }
          },
          "400": {"description": "Malformed payload or invalid balance", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "500": {"description": "Server error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    },
    "/accounts/{accountNumber}/balance": {
      "get": {
        "summary": "Get account balance",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "responses": {
          "200": {"description": "Balance", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Balance"}}}},
          "404": {"description": "Account not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    },
    "/accounts/{accountNumber}/deposit": {
      "post": {
        "summary": "Deposit funds",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount"],
                "properties": {
                  "amount": {"$ref": "#/components/schemas/Amount"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "New balance", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Balance"}}}},
          "400": {"description": "Validation error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "404": {"description": "Account not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    },
    "/accounts/{accountNumber}/withdraw": {
      "post": {
        "summary": "Withdraw funds",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount"],
                "properties": {
                  "amount": {"$ref": "#/components/schemas/Amount"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "New balance", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Balance"}}}},
          "400": {"description": "Validation error or insufficient balance", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "404": {"description": "Account not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    }
  }
}`
