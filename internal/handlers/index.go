package handlers

import (
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/aaronzipp/player-compare/internal/catalog"
	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
	"github.com/aaronzipp/player-compare/internal/share"
	"github.com/aaronzipp/player-compare/internal/store"
	"github.com/aaronzipp/player-compare/internal/ui"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Context holds shared application dependencies
type Context struct {
	Sessions  *store.SessionStore
	Catalog   *catalog.Catalog
	Templates *template.Template
	QR        *share.QRCache
	BaseURL   string
}

// slotView is one selector column of the page
type slotView struct {
	Name    string
	Number  string
	Regions ui.SlotRegions
}

type pageData struct {
	SessionID string
	Page      *region.Page
	Players   []models.Player
	Slots     []slotView
}

// HandleIndex opens a new page session and serves the full page.
// ?left= and ?right= preselect players, so share links reopen a comparison.
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	s := store.NewSession(id, ctx.Catalog, ctx.BaseURL)

	q := r.URL.Query()
	s.Lock()
	if left := q.Get("left"); left != "" {
		s.Renderer.SetSelection(models.SlotLeft, left)
	}
	if right := q.Get("right"); right != "" {
		s.Renderer.SetSelection(models.SlotRight, right)
	}
	s.Page.Flush()
	defer s.Unlock()

	tmpl := ctx.Templates.Lookup("index.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	// Actions arriving before the page is written wait on the session lock.
	ctx.Sessions.Set(id, s)
	log.Printf("Created session: id=%s state=%s", id, s.Renderer.State())

	data := pageData{
		SessionID: id,
		Page:      s.Page,
		Players:   ctx.Catalog.All(),
		Slots: []slotView{
			{Name: models.SlotLeft.String(), Number: "1", Regions: ui.RegionsFor(models.SlotLeft)},
			{Name: models.SlotRight.String(), Number: "2", Regions: ui.RegionsFor(models.SlotRight)},
		},
	}
	templ.Handler(templ.FromGoHTML(tmpl, data)).ServeHTTP(w, r)
}
