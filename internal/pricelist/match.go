package pricelist

// BestMatch finds the rule that prices an offered item. Only authorised entries for the
// same template and material whose quality floor the item meets are candidates; the one
// with the highest floor wins and ties go to the lowest slot.
func (p *PriceList) BestMatch(templateID int32, material uint8, quality float32) (int, Entry, bool) {
	best := -1
	for i, e := range p.slots {
		if e == nil || !e.Accepts(templateID, material, quality) {
			continue
		}
		if best < 0 || e.QualityLevel > p.slots[best].QualityLevel {
			best = i
		}
	}
	if best < 0 {
		return -1, Entry{}, false
	}
	return best, *p.slots[best], true
}
