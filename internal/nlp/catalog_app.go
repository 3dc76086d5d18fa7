package nlp

import "regexp"

// appCatalog covers app lifecycle phrasings. Bundle identifiers and
// bundle paths keep their original casing via the case-preserving
// re-match in the parser.
func appCatalog() *Catalog {
	return NewCatalog("app",
		Definition{
			Command:     "install app",
			Description: "Install an app bundle (.app or .ipa) on the simulator",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:install|add) (?:the )?app(?:lication)?(?: (?:at|from))? (?P<appPath>.+)$`),
				regexp.MustCompile(`(?i)^(?:instala|instalar|agrega|agregar) (?:la )?app(?:licaci[oó]n)?(?: (?:en|desde))? (?P<appPath2>.+)$`),
			},
			Extractors: map[string]Extractor{
				"appPath": FromGroups("appPath", "appPath2"),
			},
			Required: []string{"appPath"},
			Examples: []string{
				"install app /path/to/MyApp.app",
				"install the app from ~/builds/Demo.ipa",
				"instala la app /ruta/App.app",
			},
		},
		Definition{
			Command:     "launch app",
			Description: "Launch an installed app by bundle identifier",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:launch|open|run|start) (?:the )?app(?:lication)? (?P<bundleId>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^(?:lanza|lanzar|abre|abrir|ejecuta|ejecutar) (?:la )?app(?:licaci[oó]n)? (?P<bundleId2>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^(?:launch|lanza|abre) (?P<bundleId3>[\w-]+(?:\.[\w-]+){2,})$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2", "bundleId3"),
			},
			Required: []string{"bundleId"},
			Examples: []string{
				"launch app com.example.demo",
				"launch com.apple.mobilesafari",
				"abre la app com.example.demo",
			},
		},
		Definition{
			Command:     "terminate app",
			Description: "Terminate a running app by bundle identifier",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:terminate|kill|close|quit|stop) (?:the )?app(?:lication)? (?P<bundleId>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^(?:termina|terminar|cierra|cerrar|mata|matar) (?:la )?app(?:licaci[oó]n)? (?P<bundleId2>[\w.-]+)$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2"),
			},
			Required: []string{"bundleId"},
			Examples: []string{
				"terminate app com.example.demo",
				"kill the app com.example.demo",
				"cierra la app com.example.demo",
			},
		},
		Definition{
			Command:     "uninstall app",
			Description: "Uninstall an app by bundle identifier",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:uninstall|remove|delete) (?:the )?app(?:lication)? (?P<bundleId>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^(?:desinstala|desinstalar|elimina|eliminar|quita|quitar) (?:la )?app(?:licaci[oó]n)? (?P<bundleId2>[\w.-]+)$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2"),
			},
			Required: []string{"bundleId"},
			Examples: []string{
				"uninstall app com.example.demo",
				"desinstala la app com.example.demo",
			},
		},
		Definition{
			Command:     "list apps",
			Description: "List apps installed on the simulator",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:list|show)(?: the)?(?: installed)? app(?:lication)?s$`),
				regexp.MustCompile(`(?i)^(?:lista|listar|muestra|mostrar) (?:las )?app(?:licacione)?s(?: instaladas)?$`),
			},
			Examples: []string{
				"list apps",
				"show installed apps",
				"lista las apps instaladas",
			},
		},
	)
}
