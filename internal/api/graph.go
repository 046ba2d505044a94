package api

import "net/http"

func handleGraph(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.GraphDOT == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "GRAPH_NOT_CONFIGURED", "workflow graph is not configured", false, nil)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(deps.GraphDOT()))
}
