// Package docs registra la especificación OpenAPI servida en /swagger/*.
// Se regenera con: swag init -g cmd/api/main.go -o internal/docs
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"tags": ["system"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Iniciar sesión", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "invalid json"}, "401": {"description": "invalid email or password"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Cerrar sesión", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/me": {"get": {"tags": ["auth"], "summary": "Sesión actual", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/me/menu": {"get": {"tags": ["auth"], "summary": "Menú según rol", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/me/navigate": {"post": {"tags": ["auth"], "summary": "Cambiar de pantalla", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "unknown page"}, "401": {"description": "unauthorized"}}}},
        "/dashboard": {"get": {"tags": ["dashboard"], "summary": "Dashboard", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/pets": {
            "get": {"tags": ["pets"], "summary": "Listar mascotas", "security": [{"BearerAuth": []}], "parameters": [
                {"type": "string", "name": "q", "in": "query"},
                {"type": "string", "name": "species", "in": "query"},
                {"type": "string", "name": "status", "in": "query"},
                {"type": "string", "name": "location", "in": "query"}
            ], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}},
            "post": {"tags": ["pets"], "summary": "Registrar mascota", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "campos requeridos"}, "401": {"description": "unauthorized"}}}
        },
        "/pets/{petID}": {"get": {"tags": ["pets"], "summary": "Perfil de mascota", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "pet not found"}}}},
        "/pets/{petID}/vaccinations": {"post": {"tags": ["vaccinations"], "summary": "Registrar vacunación", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "400": {"description": "campos requeridos"}, "404": {"description": "pet not found"}}}},
        "/vaccinations/today": {"get": {"tags": ["vaccinations"], "summary": "Vacunados hoy", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/vaccinations/locations": {"get": {"tags": ["vaccinations"], "summary": "Sugerencias de ubicación", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/vaccinations/options": {"get": {"tags": ["vaccinations"], "summary": "Catálogos del formulario", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/rabies-cases": {
            "get": {"tags": ["rabies-cases"], "summary": "Listar reportes de rabia", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["rabies-cases"], "summary": "Reportar caso de rabia", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "campos requeridos"}}}
        },
        "/rabies-cases/options": {"get": {"tags": ["rabies-cases"], "summary": "Síntomas y acciones", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/rabies-cases/{caseID}": {"get": {"tags": ["rabies-cases"], "summary": "Detalle del reporte", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "caseID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not found"}}}},
        "/reports": {"get": {"tags": ["reports"], "summary": "Reportes y estadísticas", "security": [{"BearerAuth": []}], "parameters": [
                {"type": "string", "name": "from", "in": "query"},
                {"type": "string", "name": "to", "in": "query"},
                {"type": "string", "name": "municipality", "in": "query"},
                {"type": "string", "name": "veterinarian", "in": "query"},
                {"type": "string", "name": "species", "in": "query"}
            ], "responses": {"200": {"description": "OK"}, "400": {"description": "filtros inválidos"}}}},
        "/calendar/events": {
            "get": {"tags": ["calendar"], "summary": "Listar jornadas", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["calendar"], "summary": "Programar jornada", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "reglas de validación"}}}
        },
        "/calendar/upcoming": {"get": {"tags": ["calendar"], "summary": "Próximas jornadas", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/calendar/week": {"get": {"tags": ["calendar"], "summary": "Semana del calendario", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/users": {
            "get": {"tags": ["admin"], "summary": "Listar usuarios", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "forbidden"}}},
            "post": {"tags": ["admin"], "summary": "Alta de usuario", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "forbidden"}, "409": {"description": "email already registered"}}}
        },
        "/admin/vaccines": {
            "get": {"tags": ["admin"], "summary": "Inventario de vacunas", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "forbidden"}}},
            "post": {"tags": ["admin"], "summary": "Agregar lote", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "forbidden"}}}
        },
        "/admin/logs": {"get": {"tags": ["admin"], "summary": "Log del sistema", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "forbidden"}}}},
        "/admin/stats": {"get": {"tags": ["admin"], "summary": "Estadísticas del sistema", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "forbidden"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "VaxTracker API",
	Description:      "Registro de vacunación antirrábica de mascotas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
