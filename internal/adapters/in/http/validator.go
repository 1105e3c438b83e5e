package http

import (
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestValidator checks every request against the API document before the
// handler sees it. Path and query parameters, and JSON bodies, must match
// their schemas; a mismatch answers 400 INVALID_ARGUMENT. Requests the
// document does not describe pass through untouched.
//
// Authentication is left to SessionMiddleware, which runs first.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Servers would pin matching to a host; routes are matched on path only.
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(c)
			}
			if err != nil {
				return badRequest(c, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, validationMessage(err))
			}
			return next(c)
		}
	}, nil
}

// validationMessage keeps the first line of a validation error. The rest is
// a dump of the violated schema.
func validationMessage(err error) string {
	message, _, _ := strings.Cut(err.Error(), "\n")
	return message
}

// publicOperations lists the routes the document marks with an empty
// security requirement, in echo's ":param" notation.
func publicOperations(swagger *openapi3.T) map[string]struct{} {
	public := make(map[string]struct{})
	for path, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			if op.Security != nil && len(*op.Security) == 0 {
				public[method+" "+echoPath(path)] = struct{}{}
			}
		}
	}
	return public
}

func echoPath(path string) string {
	path = strings.ReplaceAll(path, "{", ":")
	return strings.ReplaceAll(path, "}", "")
}

// publicSkipper skips the session check on the operations in public.
func publicSkipper(public map[string]struct{}) middleware.Skipper {
	return func(c echo.Context) bool {
		_, ok := public[c.Request().Method+" "+c.Path()]
		return ok
	}
}
