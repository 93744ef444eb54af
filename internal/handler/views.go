package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/pricing"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views renders price list forms as HTML pages.
type Views struct {
	priceList *template.Template
	addItem   *template.Template
}

type priceListPage struct {
	Action   string
	Form     *pricing.Form
	Messages []string
}

type addItemPage struct {
	Action   string
	Choice   *pricing.ChoiceForm
	Messages []string
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
}

// LoadViews parses the embedded page templates.
func LoadViews() (*Views, error) {
	parse := func(page string) (*template.Template, error) {
		t, err := template.New(page).Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		return t, nil
	}

	pl, err := parse("pricelist.html")
	if err != nil {
		return nil, err
	}
	ai, err := parse("additem.html")
	if err != nil {
		return nil, err
	}
	return &Views{priceList: pl, addItem: ai}, nil
}

// MustLoadViews is LoadViews for package-level wiring; the templates are embedded so a
// failure is a build defect.
func MustLoadViews() *Views {
	v, err := LoadViews()
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Views) execute(w http.ResponseWriter, r *http.Request, t *template.Template, status int, data any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := t.ExecuteTemplate(buf, "layout", data); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgTemplateFailed, "template", t.Name(), "error", err)
		http.Error(w, ErrMsgRenderFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (v *Views) renderPriceList(w http.ResponseWriter, r *http.Request, status int, action string, form *pricing.Form, messages []string) {
	v.execute(w, r, v.priceList, status, priceListPage{Action: action, Form: form, Messages: messages})
}

func (v *Views) renderAddItem(w http.ResponseWriter, r *http.Request, status int, action string, choice *pricing.ChoiceForm, messages []string) {
	v.execute(w, r, v.addItem, status, addItemPage{Action: action, Choice: choice, Messages: messages})
}
