package nlp

import "regexp"

// uiCatalog covers screen interaction phrasings. The free-text
// definition ("type text") is deliberately last: its pattern is the
// most permissive in the catalog.
func uiCatalog() *Catalog {
	return NewCatalog("ui",
		Definition{
			Command:     "tap",
			Description: "Tap the screen at x, y coordinates",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:tap|touch|click)(?: (?:on|at))?(?: coordinates?)? ?\(?(?P<x>\d+(?:\.\d+)?)\s*[, ]\s*(?P<y>\d+(?:\.\d+)?)\)?$`),
				regexp.MustCompile(`(?i)^(?:toca|tocar|pulsa|pulsar)(?: en)?(?: las coordenadas)? ?\(?(?P<x2>\d+(?:\.\d+)?)\s*[, ]\s*(?P<y2>\d+(?:\.\d+)?)\)?$`),
			},
			Extractors: map[string]Extractor{
				"x": FromGroups("x", "x2"),
				"y": FromGroups("y", "y2"),
			},
			Required: []string{"x", "y"},
			Examples: []string{
				"tap 100, 200",
				"tap on (50, 75)",
				"toca 10, 20",
				"pulsa en las coordenadas 30, 40",
			},
		},
		Definition{
			Command:     "swipe",
			Description: "Swipe from one point to another, optionally over a duration",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:swipe|drag) (?:from )?\(?(?P<x1>\d+(?:\.\d+)?)\s*[, ]\s*(?P<y1>\d+(?:\.\d+)?)\)? to \(?(?P<x2>\d+(?:\.\d+)?)\s*[, ]\s*(?P<y2>\d+(?:\.\d+)?)\)?(?: (?:in|over|lasting) (?P<duration>\d+(?:\.\d+)?)\s*(?:ms|milliseconds|s|seconds)?)?$`),
				regexp.MustCompile(`(?i)^(?:desliza|deslizar|arrastra|arrastrar) (?:desde )?\(?(?P<a1>\d+(?:\.\d+)?)\s*[, ]\s*(?P<b1>\d+(?:\.\d+)?)\)? (?:hasta|a) \(?(?P<a2>\d+(?:\.\d+)?)\s*[, ]\s*(?P<b2>\d+(?:\.\d+)?)\)?(?: (?:en|durante) (?P<duracion>\d+(?:\.\d+)?)\s*(?:ms|milisegundos|s|segundos)?)?$`),
			},
			Extractors: map[string]Extractor{
				"x1":       FromGroups("x1", "a1"),
				"y1":       FromGroups("y1", "b1"),
				"x2":       FromGroups("x2", "a2"),
				"y2":       FromGroups("y2", "b2"),
				"duration": FromGroups("duration", "duracion"),
			},
			Required: []string{"x1", "y1", "x2", "y2"},
			Optional: []string{"duration"},
			Examples: []string{
				"swipe from 100, 300 to 100, 100",
				"swipe 10, 20 to 30, 40 in 500 ms",
				"desliza desde 50, 500 hasta 50, 100",
			},
		},
		Definition{
			Command:     "press button",
			Description: "Press a hardware button (home, lock, siri, side button)",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:press|push|hit)(?: the)? (?P<button>home|lock|side button|siri|apple ?pay)(?: button)?$`),
				regexp.MustCompile(`(?i)^(?:presiona|presionar|pulsa|pulsar) (?:el )?bot[oó]n (?P<button2>home|bloqueo|lateral|siri)$`),
			},
			Extractors: map[string]Extractor{
				"button": FromGroups("button", "button2"),
			},
			Required: []string{"button"},
			Examples: []string{
				"press home",
				"press the lock button",
				"pulsa el botón home",
			},
		},
		Definition{
			Command:     "press key",
			Description: "Press a key by HID keycode",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:press|hit)(?: the)? key(?: code)? (?P<keycode>\d+)$`),
				regexp.MustCompile(`(?i)^(?:presiona|presionar|pulsa|pulsar) (?:la )?tecla (?P<keycode2>\d+)$`),
			},
			Extractors: map[string]Extractor{
				"keycode": FromGroups("keycode", "keycode2"),
			},
			Required: []string{"keycode"},
			Examples: []string{
				"press key 40",
				"pulsa la tecla 40",
			},
		},
		Definition{
			Command:     "type text",
			Description: "Type text into the focused element",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:type|write|input|enter)(?: the)?(?: text)? "?(?P<text>.+?)"?$`),
				regexp.MustCompile(`(?i)^(?:escribe|escribir|teclea|teclear|introduce|introducir)(?: el)?(?: texto)? "?(?P<texto>.+?)"?$`),
			},
			Extractors: map[string]Extractor{
				"text": FromGroups("text", "texto"),
			},
			Required: []string{"text"},
			Examples: []string{
				"type hello world",
				`type "hello@example.com"`,
				"escribe hola mundo",
			},
		},
	)
}
