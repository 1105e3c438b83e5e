package http

import (
	"encoding/json"
	"sync"

	"procurement/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded API document to the swagger UI.
type openAPIDoc struct{}

var docJSON = sync.OnceValue(func() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	data, err := json.Marshal(swagger)
	if err != nil {
		return "{}"
	}
	return string(data)
})

// ReadDoc implements swag.Swagger.
func (openAPIDoc) ReadDoc() string {
	return docJSON()
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
