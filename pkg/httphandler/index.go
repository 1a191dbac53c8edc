package httphandler

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"

	// Packages
	manager "github.com/mutablelogic/go-research/pkg/manager"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	indexTitle = "Deep Research"
)

var (
	//go:embed html/index.html
	indexSource string

	indexTemplate = template.Must(template.New("index").Parse(indexSource))
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type indexData struct {
	Title         string
	Models        []schema.ModelInfo
	SystemPrompt  string
	UserPrompt    string
	HasCredential bool
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /
func IndexHandler(manager *manager.Manager) (string, httprequest.PathItem) {
	return "/", httprequest.NewPathItem("Index", "Research form").Get(func(w http.ResponseWriter, r *http.Request) {
		// The root pattern also matches paths which are not registered
		if r.URL.Path != "/" {
			_ = httpresponse.Error(w, httpresponse.ErrNotFound, r.URL.Path)
			return
		}
		defaults, err := manager.Config()
		if err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}

		// The server credential is never written to the page
		var buf bytes.Buffer
		if err := indexTemplate.Execute(&buf, indexData{
			Title:         indexTitle,
			Models:        modelList(defaults.Model).Body,
			SystemPrompt:  defaults.SystemPrompt,
			UserPrompt:    defaults.UserPrompt,
			HasCredential: defaults.Credential != "",
		}); err != nil {
			_ = httpresponse.Error(w, httpresponse.ErrInternalError.With(err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}, "Research form")
}
