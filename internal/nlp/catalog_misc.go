package nlp

import "regexp"

// miscCatalog covers the remaining device operations.
func miscCatalog() *Catalog {
	return NewCatalog("misc",
		Definition{
			Command:     "open url",
			Description: "Open a URL on the simulator",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:open|visit|navigate to|go to) (?:the )?url (?P<url>\S+)$`),
				regexp.MustCompile(`(?i)^(?:open|visit|abre|abrir|visita|visitar) (?P<url2>https?://\S+)$`),
				regexp.MustCompile(`(?i)^(?:abre|abrir|visita|visitar|navega a) (?:la )?url (?P<url3>\S+)$`),
			},
			Extractors: map[string]Extractor{
				"url": FromGroups("url", "url2", "url3"),
			},
			Required: []string{"url"},
			Examples: []string{
				"open url https://apple.com",
				"open https://example.com",
				"abre la url https://apple.com",
			},
		},
		Definition{
			Command:     "set location",
			Description: "Override the simulated GPS location",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^set (?:the )?location to \(?(?P<latitude>-?\d+(?:\.\d+)?)\s*[, ]\s*(?P<longitude>-?\d+(?:\.\d+)?)\)?$`),
				regexp.MustCompile(`(?i)^(?:establece|fija|pon) la ubicaci[oó]n (?:a|en) \(?(?P<lat2>-?\d+(?:\.\d+)?)\s*[, ]\s*(?P<lon2>-?\d+(?:\.\d+)?)\)?$`),
			},
			Extractors: map[string]Extractor{
				"latitude":  FromGroups("latitude", "lat2"),
				"longitude": FromGroups("longitude", "lon2"),
			},
			Required: []string{"latitude", "longitude"},
			Examples: []string{
				"set location to 40.4168, -3.7038",
				"fija la ubicación en 19.4326, -99.1332",
			},
		},
		Definition{
			Command:     "add media",
			Description: "Add photos or videos to the camera roll",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:add|import) (?:the )?(?:media|photos?|videos?)(?: (?:from|at))? (?P<mediaPath>.+)$`),
				regexp.MustCompile(`(?i)^(?:añade|añadir|agrega|agregar|importa|importar) (?:los |las )?(?:medios|fotos?|v[ií]deos?)(?: desde)? (?P<mediaPath2>.+)$`),
			},
			Extractors: map[string]Extractor{
				"mediaPath": FromGroups("mediaPath", "mediaPath2"),
			},
			Required: []string{"mediaPath"},
			Examples: []string{
				"add media ~/Pictures/demo.png",
				"import photos from ~/Pictures",
				"agrega fotos ~/Fotos/uno.jpg",
			},
		},
		Definition{
			Command:     "approve permissions",
			Description: "Approve pending permission dialogs for an app",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:approve|grant|allow)(?: all)? permissions (?:for|to) (?P<bundleId>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^(?:aprueba|aprobar|concede|conceder) (?:los )?permisos (?:de|para) (?P<bundleId2>[\w.-]+)$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2"),
			},
			Required: []string{"bundleId"},
			Examples: []string{
				"approve permissions for com.example.demo",
				"concede los permisos para com.example.demo",
			},
		},
		Definition{
			Command:     "clear keychain",
			Description: "Clear the simulator keychain",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:clear|reset|wipe) (?:the )?keychain$`),
				regexp.MustCompile(`(?i)^(?:limpia|limpiar|borra|borrar|restablece|restablecer) (?:el )?llavero$`),
			},
			Examples: []string{
				"clear keychain",
				"limpia el llavero",
			},
		},
		Definition{
			Command:     "install dylib",
			Description: "Install a dynamic library on the simulator",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^install (?:the )?dylib(?: (?:at|from))? (?P<dylibPath>.+)$`),
				regexp.MustCompile(`(?i)^instala(?:r)? (?:la )?(?:dylib|librer[ií]a)(?: (?:en|desde))? (?P<dylibPath2>.+)$`),
			},
			Extractors: map[string]Extractor{
				"dylibPath": FromGroups("dylibPath", "dylibPath2"),
			},
			Required: []string{"dylibPath"},
			Examples: []string{
				"install dylib /tmp/libFoo.dylib",
				"instala la dylib /tmp/libFoo.dylib",
			},
		},
	)
}
