package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"laundry/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// RequestValidator checks request parameters and bodies against the OpenAPI
// document before they reach the handlers. The operation is looked up from
// the route echo already matched, relative to basePath; authentication is
// left to Identity.
func RequestValidator(doc *openapi3.T, basePath string) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, ok := findRoute(doc, basePath, c.Path(), req.Method)
			if !ok {
				return next(c)
			}

			pathParams := make(map[string]string, len(c.ParamNames()))
			for i, name := range c.ParamNames() {
				pathParams[name] = c.ParamValues()[i]
			}

			err := openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err)).SetInternal(err)
			}
			return next(c)
		}
	}
}

// findRoute maps an echo route template (/api/v1/orders/:orderId) to the
// document path (/orders/{orderId}) and its operation.
func findRoute(doc *openapi3.T, basePath, echoPath, method string) (*routers.Route, bool) {
	path, ok := strings.CutPrefix(echoPath, basePath)
	if !ok || path == "" {
		return nil, false
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if name, isParam := strings.CutPrefix(seg, ":"); isParam {
			segments[i] = "{" + name + "}"
		}
	}
	path = strings.Join(segments, "/")

	item := doc.Paths.Value(path)
	if item == nil {
		return nil, false
	}
	op := item.GetOperation(method)
	if op == nil {
		return nil, false
	}
	return &routers.Route{Spec: doc, Path: path, PathItem: item, Method: method, Operation: op}, true
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			reason := reqErr.Reason
			if reason == "" {
				reason = firstLine(reqErr.Err)
			}
			return fmt.Sprintf("parameter %s: %s", reqErr.Parameter.Name, reason)
		}
		if reqErr.RequestBody != nil {
			return "request body: " + firstLine(reqErr.Err)
		}
	}
	return firstLine(err)
}

func firstLine(err error) string {
	if err == nil {
		return "invalid request"
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
