package agent

// Static keyword tables backing the rule-based classifier. Spanish and
// English terms sit side by side because production traffic is
// bilingual. Built once at process start, never mutated.

// smalltalkPhrases are short social messages matched verbatim against
// the trimmed, lower-cased input.
var smalltalkPhrases = map[string]struct{}{
	// Greetings
	"hola":        {},
	"buenas":      {},
	"buen dia":    {},
	"buen día":    {},
	"buenos dias": {},
	"buenos días": {},
	"hi":          {},
	"hey":         {},
	"hello":       {},
	"que tal":     {},
	"qué tal":     {},
	"como estas":  {},
	"cómo estás":  {},
	// Thanks
	"gracias":        {},
	"muchas gracias": {},
	"thank you":      {},
	"thanks":         {},
	// Acknowledgments
	"ok":        {},
	"ok!":       {},
	"dale":      {},
	"perfecto":  {},
	"genial":    {},
	"bueno":     {},
	"entendido": {},
	"claro":     {},
	"sí":        {},
	"si":        {},
	"no":        {},
	// Farewells
	"chau":        {},
	"adiós":       {},
	"adios":       {},
	"bye":         {},
	"hasta luego": {},
	"nos vemos":   {},
	"see you":     {},
}

// salesKeywords signal purchase intent, pricing questions, and upgrade
// requests.
var salesKeywords = []string{
	// Pricing
	"precio", "price", "plan", "planes", "plans",
	"cotización", "cotizar", "quote",
	"cuanto cuesta", "cuánto cuesta", "how much",
	"cuanto vale", "cuánto vale",
	"cost", "costo", "costos", "pricing",
	// Purchase
	"comprar", "buy", "purchase", "contratar",
	"subscribe", "subscription", "suscribir", "suscripción", "suscripcion",
	"probar", "demo", "trial", "prueba gratis", "free trial",
	// Comparison
	"vs", "versus", "diferencia entre", "difference between",
	"comparar", "compare", "cual es mejor", "which is better",
	// Upgrade / Limits
	"upgrade", "mejorar plan", "cambiar plan", "subir de plan",
	"más mensajes", "more messages", "sin crédito", "sin tokens",
	"out of credits", "límite", "limit", "alcanzado",
	// Features
	"incluye", "includes", "tiene", "has", "viene con", "comes with",
	"ofrece", "offers", "funcionalidades", "features", "características",
	// Business
	"licencia", "license", "factura", "invoice",
	"descuento", "discount", "oferta", "offer",
	// Payment
	"pagar", "pay", "pago", "payment",
	"forma de pago", "payment method",
	"tarjeta", "card", "transferencia", "transfer",
}

// supportKeywords signal technical issues and help requests.
var supportKeywords = []string{
	// Problems
	"no funciona", "not working", "doesn't work", "no me anda",
	"no puedo", "can't", "cannot", "no logro",
	"error", "bug", "problema", "problem",
	"falla", "fallo", "fails", "broken",
	"no responde", "no carga", "not loading",
	// Help
	"ayuda", "help", "como hago", "cómo hago", "how do i",
	"necesito ayuda", "need help",
	"soporte", "support", "asistencia", "assistance",
	// Configuration
	"configurar", "configure", "setup", "instalar", "install",
	"conectar", "connect", "integrar", "integrate",
	"integración", "integration",
	// Access
	"no puedo entrar", "can't login", "can't access", "login",
	"contraseña", "password", "olvidé", "forgot",
	"recuperar", "recover", "reset",
	// Technical
	"api", "webhook", "widget", "dashboard", "analytics",
	"leads", "mensajes", "messages",
	// Urgency
	"urgente", "urgent", "rápido", "asap",
}

// faqKeywords signal general informational questions.
var faqKeywords = []string{
	// Information
	"qué es", "que es", "what is",
	"como funciona", "cómo funciona", "how does",
	"para que sirve", "para qué sirve", "what for",
	// Capabilities
	"puede", "puedes", "can it", "can you",
	"sirve para", "used for", "hace", "does it",
	"permite", "allows",
	// Limits
	"límite", "limite", "limit",
	"cuanto", "cuánto", "how much", "how many",
	"máximo", "maximo", "maximum", "mínimo", "minimo", "minimum",
	// Location / Hours (for businesses)
	"horario", "horarios", "hours", "schedule",
	"ubicación", "location", "dirección", "address",
	"donde", "dónde", "where", "cuando", "cuándo", "when",
	"abierto", "open", "cerrado", "closed",
	// General
	"info", "información", "information", "detalles", "details",
	"explicame", "explícame", "explain",
}
