package catalog

// Section is one storefront section: a category and the products in it.
type Section struct {
	Category string
	Products []Product
}

// GroupByCategory partitions products into sections for display. Sections
// follow sectionOrder when given, otherwise the order of first appearance
// in products. A category with zero products is omitted entirely.
func GroupByCategory(products []Product, sectionOrder []string) []Section {
	byCategory := make(map[string][]Product)
	order := sectionOrder
	for _, p := range products {
		if _, seen := byCategory[p.Category]; !seen && sectionOrder == nil {
			order = append(order, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	sections := make([]Section, 0, len(order))
	for _, category := range order {
		if len(byCategory[category]) == 0 {
			continue
		}
		sections = append(sections, Section{
			Category: category,
			Products: byCategory[category],
		})
	}
	return sections
}
