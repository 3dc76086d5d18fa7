package nlp

import "regexp"

// simulatorCatalog covers simulator lifecycle phrasings.
func simulatorCatalog() *Catalog {
	return NewCatalog("simulator",
		Definition{
			Command:     "create simulator session",
			Description: "Start a simulator session, optionally naming the device",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:create|start|open)(?: a)?(?: new)? (?:simulator )?session(?: (?:with|for|on) (?P<deviceName>.+?))?(?P<noboot> without booting)?$`),
				regexp.MustCompile(`(?i)^(?:crea|crear|inicia|iniciar)(?: una)?(?: nueva)? sesi[oó]n(?: de simulador)?(?: (?:con|en) (?P<deviceName>.+?))?(?P<noboot> sin arrancar)?$`),
			},
			Extractors: map[string]Extractor{
				"deviceName": FromGroup("deviceName"),
				"autoboot":   WhenGroup("noboot", "false"),
			},
			Optional: []string{"deviceName", "autoboot"},
			Examples: []string{
				"create session",
				"create a new simulator session with iPhone 16",
				"crear sesión con iPhone 15",
				"iniciar sesión",
			},
		},
		Definition{
			Command:     "terminate simulator session",
			Description: "End the current simulator session",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:terminate|end|close|stop)(?: the| current)? (?:simulator )?session$`),
				regexp.MustCompile(`(?i)^(?:termina|terminar|cierra|cerrar|finaliza|finalizar) (?:la )?sesi[oó]n$`),
			},
			Examples: []string{
				"terminate session",
				"end the session",
				"terminar sesión",
				"cierra la sesión",
			},
		},
		Definition{
			Command:     "list booted simulators",
			Description: "List simulators that are currently running",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:list|show)(?: the)? (?:booted|running) simulators$`),
				regexp.MustCompile(`(?i)^(?:lista|listar|muestra|mostrar)(?: los)? simuladores (?:arrancados|activos|en ejecuci[oó]n)$`),
			},
			Examples: []string{
				"list booted simulators",
				"show running simulators",
				"lista los simuladores arrancados",
			},
		},
		Definition{
			Command:     "list simulators",
			Description: "List all available simulators",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:list|show)(?: all)?(?: the)?(?: available)? simulators$`),
				regexp.MustCompile(`(?i)^(?:lista|listar|muestra|mostrar)(?: los)? simuladores(?: disponibles)?$`),
			},
			Examples: []string{
				"list simulators",
				"show available simulators",
				"listar simuladores",
				"muestra los simuladores disponibles",
			},
		},
		Definition{
			Command:     "boot simulator",
			Description: "Boot a simulator by UDID, or the session default",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:boot|start) (?:the )?simulator(?: (?P<udid>[0-9a-f][0-9a-f-]{7,}))?$`),
				regexp.MustCompile(`(?i)^(?:arranca|arrancar|enciende|encender) (?:el )?simulador(?: (?P<udid>[0-9a-f][0-9a-f-]{7,}))?$`),
			},
			Extractors: map[string]Extractor{
				"udid": FromGroup("udid"),
			},
			Optional: []string{"udid"},
			Examples: []string{
				"boot simulator",
				"boot the simulator 4a1e2b3c-5d6f-7a8b-9c0d-1e2f3a4b5c6d",
				"arranca el simulador",
			},
		},
		Definition{
			Command:     "shutdown simulator",
			Description: "Shut down a simulator by UDID, or the session default",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:shutdown|shut down|stop|turn off) (?:the )?simulator(?: (?P<udid>[0-9a-f][0-9a-f-]{7,}))?$`),
				regexp.MustCompile(`(?i)^(?:apaga|apagar|det[eé]n|detener) (?:el )?simulador(?: (?P<udid>[0-9a-f][0-9a-f-]{7,}))?$`),
			},
			Extractors: map[string]Extractor{
				"udid": FromGroup("udid"),
			},
			Optional: []string{"udid"},
			Examples: []string{
				"shutdown simulator",
				"shut down the simulator",
				"apaga el simulador",
			},
		},
		Definition{
			Command:     "focus simulator",
			Description: "Bring the simulator window to the foreground",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^(?:focus|foreground)(?: the)? simulator(?: window)?$`),
				regexp.MustCompile(`(?i)^bring (?:the )?simulator(?: window)? to (?:the )?front$`),
				regexp.MustCompile(`(?i)^(?:enfoca|enfocar) (?:la ventana del |el )?simulador$`),
			},
			Examples: []string{
				"focus simulator",
				"bring the simulator to front",
				"enfoca el simulador",
			},
		},
	)
}
