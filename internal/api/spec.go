// Package api holds the HTTP contract of the checkout service and serves it
// as documentation.
package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// DocName is the name the contract is registered under in the swag registry.
const DocName = "checkout"

//go:embed openapi.yaml
var rawSpec []byte

var (
	loadOnce   sync.Once
	loadedSpec *openapi3.T
	loadErr    error

	registerOnce sync.Once
	registerErr  error
)

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			loadErr = fmt.Errorf("load openapi spec: %w", err)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			loadErr = fmt.Errorf("validate openapi spec: %w", err)
			return
		}
		loadedSpec = doc
	})
	return loadedSpec, loadErr
}

type docs struct {
	json string
}

func (d docs) ReadDoc() string {
	return d.json
}

// RegisterDocs publishes the contract, as JSON, in the swag registry. The
// registry panics on duplicate names, so only the first call registers.
func RegisterDocs() error {
	registerOnce.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}
		b, err := json.Marshal(doc)
		if err != nil {
			registerErr = fmt.Errorf("marshal openapi spec: %w", err)
			return
		}
		swag.Register(DocName, docs{json: string(b)})
	})
	return registerErr
}

// RegisterDocsRoutes serves the registered contract at /docs/openapi.json.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(DocName)
		if err != nil {
			http.Error(w, `{"success":false,"message":"documentation unavailable"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
}
