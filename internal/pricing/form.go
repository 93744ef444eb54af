package pricing

import (
	"strconv"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
)

// FieldValues carries a submitted form as key/value strings.
type FieldValues map[string]string

// FieldKey builds the key for a row field. A negative slot yields the bare suffix.
func FieldKey(slot int, suffix string) string {
	if slot < 0 {
		return suffix
	}
	return strconv.Itoa(slot) + suffix
}

// isTrue reports whether key is set to an affirmative value.
func (f FieldValues) isTrue(key string) bool {
	switch f[key] {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

// FieldKind tells a renderer which input to draw.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindCheckbox FieldKind = "checkbox"
)

// Field is one input in a row.
type Field struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Kind      FieldKind `json:"kind"`
	Value     string    `json:"value"`
	MaxLength int       `json:"max_length,omitempty"`
}

// Row is one price list entry as shown to the owner.
type Row struct {
	Slot     int     `json:"slot"`
	Label    string  `json:"label"`
	Material string  `json:"material"`
	Rarity   string  `json:"rarity,omitempty"`
	Weight   string  `json:"weight"`
	Fields   []Field `json:"fields"`
}

// Control is a form-level button.
type Control struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Form is the rendered price list question. It is a pure description;
// the HTTP layer turns it into JSON or HTML.
type Form struct {
	AgentID      string    `json:"agent_id"`
	Title        string    `json:"title"`
	Page         int       `json:"page"`
	PageCount    int       `json:"page_count"`
	Size         int       `json:"size"`
	Capacity     int       `json:"capacity"`
	Rows         []Row     `json:"rows"`
	Controls     []Control `json:"controls"`
	EmptyMessage string    `json:"empty_message,omitempty"`
}

// Choice is a template offered in the add-item flow.
type Choice struct {
	TemplateID int32  `json:"template_id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Weight     string `json:"weight"`
}

// ChoiceForm is the first step of the add-item flow.
type ChoiceForm struct {
	AgentID   string            `json:"agent_id"`
	Title     string            `json:"title"`
	Query     string            `json:"query"`
	Choices   []Choice          `json:"choices"`
	Materials []domain.Material `json:"materials"`
	Full      bool              `json:"full"`
}

// ValidationError is a rejected field value. Messages are shown to the owner verbatim.
type ValidationError struct {
	Slot    int    `json:"slot"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// Outcome is the result of applying a submitted form.
type Outcome struct {
	Messages  []string          `json:"messages"`
	Failures  []ValidationError `json:"failures,omitempty"`
	Form      *Form             `json:"form,omitempty"`
	AddItem   *ChoiceForm       `json:"add_item,omitempty"`
	Slot      int               `json:"slot,omitempty"`
	Cancelled bool              `json:"cancelled,omitempty"`
}

func (o *Outcome) fail(errs ...ValidationError) {
	for _, e := range errs {
		o.Failures = append(o.Failures, e)
		o.Messages = append(o.Messages, e.Message)
	}
}
