package nlp

import "regexp"

// captureCatalog covers screenshot, video and log phrasings.
func captureCatalog() *Catalog {
	return NewCatalog("capture",
		Definition{
			Command:     "take screenshot",
			Description: "Capture a screenshot of the simulator screen",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:take|capture|grab|make)(?: a)? screenshot$`),
				regexp.MustCompile(`(?i)^screenshot$`),
				regexp.MustCompile(`(?i)^(?:toma|tomar|haz|hacer|saca|sacar|captura|capturar) (?:una )?captura(?: de pantalla)?$`),
				regexp.MustCompile(`(?i)^captura de pantalla$`),
			},
			Examples: []string{
				"take a screenshot",
				"screenshot",
				"toma una captura de pantalla",
				"captura de pantalla",
			},
		},
		Definition{
			Command:     "record video",
			Description: "Start recording the simulator screen",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:record|start recording)(?: a| the)? (?:video|screen)(?: to (?P<outputPath>.+))?$`),
				regexp.MustCompile(`(?i)^(?:graba|grabar) (?:un )?v[ií]deo(?: en (?P<outputPath2>.+))?$`),
				regexp.MustCompile(`(?i)^(?:empieza|comienza) a grabar(?: la pantalla)?$`),
			},
			Extractors: map[string]Extractor{
				"outputPath": FromGroups("outputPath", "outputPath2"),
			},
			Optional: []string{"outputPath"},
			Examples: []string{
				"record video",
				"record the screen to /tmp/demo.mp4",
				"graba un vídeo",
				"empieza a grabar",
			},
		},
		Definition{
			Command:     "stop recording",
			Description: "Stop the active screen recording",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^stop(?: the)? recording$`),
				regexp.MustCompile(`(?i)^(?:det[eé]n|detener|para|parar) la grabaci[oó]n$`),
			},
			Examples: []string{
				"stop recording",
				"detén la grabación",
			},
		},
		Definition{
			Command:     "get logs",
			Description: "Fetch system or app logs",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:get|show|fetch|view)(?: the)?(?: system)? logs(?: (?:for|of) (?P<bundleId>[\w.-]+))?$`),
				regexp.MustCompile(`(?i)^(?:obt[eé]n|obtener|muestra|mostrar|ver) (?:los )?(?:registros|logs)(?: (?:de|para) (?P<bundleId2>[\w.-]+))?$`),
			},
			Extractors: map[string]Extractor{
				"bundleId": FromGroups("bundleId", "bundleId2"),
			},
			Optional: []string{"bundleId"},
			Examples: []string{
				"get logs",
				"show logs for com.example.demo",
				"muestra los logs",
				"ver los registros de com.example.demo",
			},
		},
	)
}
