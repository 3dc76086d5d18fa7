package nlp

import "regexp"

// accessibilityCatalog covers accessibility inspection phrasings.
// "describe point" precedes "describe screen" so coordinate forms are
// never swallowed by the whole-screen definition.
func accessibilityCatalog() *Catalog {
	return NewCatalog("accessibility",
		Definition{
			Command:     "describe point",
			Description: "Describe the accessibility element at x, y coordinates",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:describe|inspect)(?: the)? (?:point|element)(?: at)? ?\(?(?P<x>\d+(?:\.\d+)?)\s*[, ]\s*(?P<y>\d+(?:\.\d+)?)\)?$`),
				regexp.MustCompile(`(?i)^(?:describe|describir|inspecciona|inspeccionar) (?:el )?(?:punto|elemento)(?: en)? ?\(?(?P<x2>\d+(?:\.\d+)?)\s*[, ]\s*(?P<y2>\d+(?:\.\d+)?)\)?$`),
			},
			Extractors: map[string]Extractor{
				"x": FromGroups("x", "x2"),
				"y": FromGroups("y", "y2"),
			},
			Required: []string{"x", "y"},
			Examples: []string{
				"describe point 100, 200",
				"inspect the element at (10, 20)",
				"describe el punto 5, 5",
			},
		},
		Definition{
			Command:     "describe screen",
			Description: "Describe every accessibility element on screen",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:describe|inspect)(?: the)?(?: whole| entire)? (?:screen|ui)$`),
				regexp.MustCompile(`(?i)^(?:describe|list) (?:all )?(?:accessibility )?elements$`),
				regexp.MustCompile(`(?i)^(?:describe|describir|inspecciona|inspeccionar) (?:la )?pantalla$`),
				regexp.MustCompile(`(?i)^(?:lista|listar) (?:todos )?los elementos$`),
			},
			Examples: []string{
				"describe screen",
				"describe all elements",
				"describe la pantalla",
				"lista los elementos",
			},
		},
	)
}
