package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/swaggo/swag"
)

// ErrInvalidRequest marks a request that does not match the published contract.
var ErrInvalidRequest = errors.New("invalid request")

// LoadSpec reads the registered Swagger document and returns it as a
// validated OpenAPI 3 document.
func LoadSpec() (*openapi3.T, error) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("reading swagger doc: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(raw), &doc2); err != nil {
		return nil, fmt.Errorf("decoding swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("converting swagger doc: %w", err)
	}

	if err := doc3.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating openapi doc: %w", err)
	}

	return doc3, nil
}

// RequestValidator checks incoming requests against one OpenAPI document.
type RequestValidator struct {
	doc *openapi3.T
}

func NewRequestValidator(doc *openapi3.T) *RequestValidator {
	return &RequestValidator{doc: doc}
}

// Validate checks r against the operation registered for path and r.Method.
// Path parameters are read from the ServeMux match, so the ServeMux pattern
// and the document path must use the same parameter names.
func (v *RequestValidator) Validate(r *http.Request, path string) error {
	route, err := v.route(path, r.Method)
	if err != nil {
		return err
	}

	pathParams := make(map[string]string)
	for _, params := range []openapi3.Parameters{route.PathItem.Parameters, route.Operation.Parameters} {
		for _, ref := range params {
			if ref.Value != nil && ref.Value.In == openapi3.ParameterInPath {
				pathParams[ref.Value.Name] = r.PathValue(ref.Value.Name)
			}
		}
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, reason(err))
	}
	return nil
}

func (v *RequestValidator) route(path, method string) (*routers.Route, error) {
	pathItem := v.doc.Paths.Value(path)
	if pathItem == nil {
		return nil, fmt.Errorf("no documented path %q", path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("no documented operation %s %s", method, path)
	}

	return &routers.Route{
		Spec:      v.doc,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}, nil
}

// reason trims kin-openapi's error chain down to what a browser client can act on.
func reason(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Reason != "" {
			return reqErr.Reason
		}
		if reqErr.Err != nil {
			return reqErr.Err.Error()
		}
	}
	return err.Error()
}
