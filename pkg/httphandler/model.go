package httphandler

import (
	"net/http"

	// Packages
	research "github.com/mutablelogic/go-research"
	manager "github.com/mutablelogic/go-research/pkg/manager"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /model
func ModelListHandler(manager *manager.Manager) (string, httprequest.PathItem) {
	return "/model", httprequest.NewPathItem("Models", "Research models").Get(func(w http.ResponseWriter, r *http.Request) {
		defaults, err := manager.Config()
		if err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), modelList(defaults.Model))
	}, "List the research models, marking the default")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func modelList(selected research.Model) schema.ListModelsResponse {
	models := research.Models()
	resp := schema.ListModelsResponse{
		Count: uint(len(models)),
		Body:  make([]schema.ModelInfo, 0, len(models)),
	}
	for _, model := range models {
		resp.Body = append(resp.Body, schema.ModelInfo{
			Name:        model.String(),
			Description: model.Description(),
			Default:     model == selected,
		})
	}
	return resp
}
