package server

import (
	"github.com/Etch-Social/etch-local/shared"
	"net/http"
	"os"
)

const wwwPathPrefix = "www/"
const indexFileName = "index.html"

// webHandlerGroup serves the single-page local UI. Everything dynamic goes
// through /api; this only hands out the page itself.
type webHandlerGroup struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
) IHandlerGroup {
	res := webHandlerGroup{
		cfg:    cfg,
		logger: logger,
	}
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return "/web"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", rootPlacholder, func(w http.ResponseWriter, r *http.Request) { hg.getRoot(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *webHandlerGroup) getRoot(w http.ResponseWriter, r *http.Request) {
	indexBytes, err := os.ReadFile(wwwPathPrefix + indexFileName)
	if err != nil {
		hg.logger.Errorf("Failed to read %s: %v", indexFileName, err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexBytes)
}
