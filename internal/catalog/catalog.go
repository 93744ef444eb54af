package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
)

// Catalog answers questions about item templates and materials.
type Catalog interface {
	Lookup(ctx context.Context, templateID int32) (domain.ItemTemplate, error)
	Search(ctx context.Context, query string) ([]domain.ItemTemplate, error)
	MaterialName(material uint8) string
	Materials() []domain.Material
}

// Static is an immutable in-memory catalog built once at startup.
type Static struct {
	templates map[int32]domain.ItemTemplate
	ordered   []domain.ItemTemplate
	materials map[uint8]string
	matList   []domain.Material
}

// NewStatic builds a catalog from templates and materials.
// When materials is empty the built-in material table is used.
func NewStatic(templates []domain.ItemTemplate, materials []domain.Material) *Static {
	if len(materials) == 0 {
		materials = DefaultMaterials()
	}
	s := &Static{
		templates: make(map[int32]domain.ItemTemplate, len(templates)),
		materials: make(map[uint8]string, len(materials)),
	}
	for _, t := range templates {
		s.templates[t.ID] = t
	}
	s.ordered = sortByName(templates)
	for _, m := range materials {
		s.materials[m.ID] = m.Name
	}
	s.matList = slices.Clone(materials)
	slices.SortFunc(s.matList, func(a, b domain.Material) int { return int(a.ID) - int(b.ID) })
	return s
}

// Lookup returns the template for templateID.
func (s *Static) Lookup(_ context.Context, templateID int32) (domain.ItemTemplate, error) {
	t, ok := s.templates[templateID]
	if !ok {
		return domain.ItemTemplate{}, fmt.Errorf("%w: %d", domain.ErrTemplateNotFound, templateID)
	}
	return t, nil
}

// Search returns templates whose name contains query, ignoring case, in name order.
// An empty query returns every template.
func (s *Static) Search(_ context.Context, query string) ([]domain.ItemTemplate, error) {
	return filterByName(s.ordered, query), nil
}

// MaterialName returns the display name of material.
func (s *Static) MaterialName(material uint8) string {
	return materialName(s.materials, material)
}

// Materials lists known materials in id order.
func (s *Static) Materials() []domain.Material {
	return slices.Clone(s.matList)
}

func materialName(names map[uint8]string, material uint8) string {
	if n, ok := names[material]; ok {
		return n
	}
	return fmt.Sprintf(UnknownMaterialFmt, material)
}

func sortByName(templates []domain.ItemTemplate) []domain.ItemTemplate {
	out := slices.Clone(templates)
	col := collate.New(language.Und, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b domain.ItemTemplate) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return int(a.ID - b.ID)
	})
	return out
}

func filterByName(ordered []domain.ItemTemplate, query string) []domain.ItemTemplate {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	out := make([]domain.ItemTemplate, 0, len(ordered))
	for _, t := range ordered {
		if q == "" || strings.Contains(fold.String(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}
