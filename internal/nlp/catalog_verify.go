package nlp

import "regexp"

// verificationCatalog covers verification predicate phrasings, used to
// gate conditional command trees.
func verificationCatalog() *Catalog {
	return NewCatalog("verification",
		Definition{
			Command:     "verify app installed",
			Description: "Check whether an app is installed",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:verify|check)(?: that)?(?: the)?(?: app)? (?P<bundleId>[\w.-]+) is installed$`),
				regexp.MustCompile(`(?i)^(?:verifica|verificar|comprueba|comprobar) (?:que )?(?:la app )?(?P<bundleId2>[\w.-]+) est[aáé] instalada?$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2"),
			},
			Required: []string{"bundleId"},
			Examples: []string{
				"verify app com.example.demo is installed",
				"check that com.example.demo is installed",
				"comprueba que com.example.demo está instalada",
			},
		},
		Definition{
			Command:     "verify simulator booted",
			Description: "Check whether the simulator is booted",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:verify|check)(?: that)?(?: the)? simulator is (?:booted|running)$`),
				regexp.MustCompile(`(?i)^(?:verifica|verificar|comprueba|comprobar) (?:que )?(?:el )?simulador est[aáé] (?:arrancado|encendido|en ejecuci[oó]n)$`),
			},
			Examples: []string{
				"verify the simulator is booted",
				"check simulator is running",
				"verifica que el simulador está arrancado",
			},
		},
	)
}
