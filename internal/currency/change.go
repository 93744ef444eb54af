package currency

import (
	"errors"
	"fmt"
)

// Denomination identifies one of the four coin types.
type Denomination int

const (
	Gold Denomination = iota
	Silver
	Copper
	Iron
)

// Denominations lists every denomination from the most to the least valuable.
var Denominations = []Denomination{Gold, Silver, Copper, Iron}

func (d Denomination) String() string {
	switch d {
	case Gold:
		return "gold"
	case Silver:
		return "silver"
	case Copper:
		return "copper"
	case Iron:
		return "iron"
	default:
		return fmt.Sprintf("denomination(%d)", int(d))
	}
}

// ErrInvalidRatio is returned when a conversion ratio would not produce distinct denominations.
var ErrInvalidRatio = errors.New("denomination ratio must be greater than 1")

// Ratios holds how many coins of one denomination make one of the next.
type Ratios struct {
	IronPerCopper   int64
	CopperPerSilver int64
	SilverPerGold   int64
}

// DefaultRatios returns 100 iron per copper, 100 copper per silver and 100 silver per gold.
func DefaultRatios() Ratios {
	return Ratios{
		IronPerCopper:   DefaultRatio,
		CopperPerSilver: DefaultRatio,
		SilverPerGold:   DefaultRatio,
	}
}

// Change is an amount split into its four denominations.
type Change struct {
	Gold   int64 `json:"gold"`
	Silver int64 `json:"silver"`
	Copper int64 `json:"copper"`
	Iron   int64 `json:"iron"`
}

// Get returns the component for d.
func (c Change) Get(d Denomination) int64 {
	switch d {
	case Gold:
		return c.Gold
	case Silver:
		return c.Silver
	case Copper:
		return c.Copper
	default:
		return c.Iron
	}
}

// With returns a copy of c with the component for d replaced.
func (c Change) With(d Denomination, v int64) Change {
	switch d {
	case Gold:
		c.Gold = v
	case Silver:
		c.Silver = v
	case Copper:
		c.Copper = v
	default:
		c.Iron = v
	}
	return c
}

// Converter turns totals in iron into Change and back using fixed ratios.
type Converter struct {
	ironPerCopper int64
	ironPerSilver int64
	ironPerGold   int64
}

// NewConverter validates r and precomputes the iron value of each denomination.
func NewConverter(r Ratios) (*Converter, error) {
	if r.IronPerCopper <= 1 || r.CopperPerSilver <= 1 || r.SilverPerGold <= 1 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidRatio, r)
	}
	perSilver := r.IronPerCopper * r.CopperPerSilver
	return &Converter{
		ironPerCopper: r.IronPerCopper,
		ironPerSilver: perSilver,
		ironPerGold:   perSilver * r.SilverPerGold,
	}, nil
}

// MustConverter is NewConverter for ratios known to be valid.
func MustConverter(r Ratios) *Converter {
	c, err := NewConverter(r)
	if err != nil {
		panic(err)
	}
	return c
}

// Decompose splits a non-negative total into denominations.
// Negative totals yield zero change.
func (c *Converter) Decompose(total int64) Change {
	if total <= 0 {
		return Change{}
	}
	var ch Change
	ch.Gold = total / c.ironPerGold
	total %= c.ironPerGold
	ch.Silver = total / c.ironPerSilver
	total %= c.ironPerSilver
	ch.Copper = total / c.ironPerCopper
	ch.Iron = total % c.ironPerCopper
	return ch
}

// Compose sums the components of ch into a total in iron.
// Components may be negative, in which case the total can be negative too.
func (c *Converter) Compose(ch Change) int64 {
	return ch.Gold*c.ironPerGold + ch.Silver*c.ironPerSilver + ch.Copper*c.ironPerCopper + ch.Iron
}

// Format renders a total as e.g. "1g 22s 3c 4i", omitting zero components.
func (c *Converter) Format(total int64) string {
	ch := c.Decompose(total)
	out := ""
	for _, d := range Denominations {
		v := ch.Get(d)
		if v == 0 {
			continue
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%d%c", v, d.String()[0])
	}
	if out == "" {
		return "0i"
	}
	return out
}
