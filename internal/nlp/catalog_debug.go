package nlp

import "regexp"

// debugCatalog covers debugger and crash log phrasings. "debug status"
// precedes "start debug" so the bare "debug <word>" form cannot
// swallow it; the bare form also requires a dotted bundle identifier.
func debugCatalog() *Catalog {
	return NewCatalog("debug",
		Definition{
			Command:     "debug status",
			Description: "Show the state of the active debug session",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:show |get )?debug(?:ger)? status$`),
				regexp.MustCompile(`(?i)^estado (?:de la |del )?depuraci[oó]n$`),
			},
			Examples: []string{
				"debug status",
				"show debug status",
				"estado de la depuración",
			},
		},
		Definition{
			Command:     "start debug",
			Description: "Attach a debugger to an app",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:start )?debug(?:ging)? (?:the )?app (?P<bundleId>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^debug (?P<bundleId2>[\w-]+(?:\.[\w-]+)+)$`),
				regexp.MustCompile(`(?i)^(?:inicia|iniciar) (?:la )?depuraci[oó]n de (?P<bundleId3>[\w.-]+)$`),
				regexp.MustCompile(`(?i)^depura(?:r)? (?P<bundleId4>[\w-]+(?:\.[\w-]+)+)$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2", "bundleId3", "bundleId4"),
			},
			Required: []string{"bundleId"},
			Examples: []string{
				"debug app com.example.demo",
				"start debugging the app com.example.demo",
				"depura com.example.demo",
			},
		},
		Definition{
			Command:     "stop debug",
			Description: "Detach the active debugger",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^stop debug(?:ging)?$`),
				regexp.MustCompile(`(?i)^(?:det[eé]n|detener|para|parar) la depuraci[oó]n$`),
			},
			Examples: []string{
				"stop debugging",
				"detén la depuración",
			},
		},
		Definition{
			Command:     "list crash logs",
			Description: "List crash reports on the simulator",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:list|show) (?:the )?crash (?:logs|reports)$`),
				regexp.MustCompile(`(?i)^(?:lista|listar|muestra|mostrar) (?:los )?(?:informes|registros) de (?:fallos?|errores)$`),
			},
			Examples: []string{
				"list crash logs",
				"muestra los informes de fallos",
			},
		},
		Definition{
			Command:     "show crash log",
			Description: "Show the contents of one crash report",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:show|open|view) (?:the )?crash (?:log|report) (?P<name>\S+)$`),
				regexp.MustCompile(`(?i)^(?:muestra|mostrar|abre|abrir) (?:el )?informe de fallo (?P<name2>\S+)$`),
			},
			Extractors: map[string]Extractor{
				"name": FromGroups("name", "name2"),
			},
			Required: []string{"name"},
			Examples: []string{
				"show crash log MyApp-2024-01-01",
				"muestra el informe de fallo MyApp-123",
			},
		},
		Definition{
			Command:     "delete crash logs",
			Description: "Delete crash reports from the simulator",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:delete|clear|remove) (?:all )?(?:the )?crash (?:logs|reports)$`),
				regexp.MustCompile(`(?i)^(?:borra|borrar|elimina|eliminar|limpia|limpiar) (?:los )?informes de fallos?$`),
			},
			Examples: []string{
				"delete crash logs",
				"clear all crash logs",
				"elimina los informes de fallos",
			},
		},
	)
}
