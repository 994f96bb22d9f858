// Package docs registers the API document with swag so that the swagger UI
// served by echo-swagger can read it.
package docs

import (
	"chapatis/internal/api/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Chapatis Online",
	Description:      "Order fresh chapatis for Wednesday and Saturday delivery.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(servers.SpecJSON()),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
