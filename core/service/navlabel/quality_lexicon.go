package navlabel

// navPhrases is the multilingual lexicon of site-navigation and
// boilerplate phrases that must never be mistaken for a person's name.
// Entries are lowercase spaced forms; membership is also checked on the
// compacted form. Pure data.
var navPhrases = []string{
	// English
	"home", "about", "about us", "about me", "contact", "contact us",
	"contact me", "team", "our team", "meet the team", "careers", "jobs",
	"join us", "join our team", "work with us", "pricing", "plans",
	"products", "services", "solutions", "resources", "blog", "news",
	"press", "events", "partners", "customers", "testimonials",
	"case studies", "faq", "help", "help center", "support",
	"customer support", "documentation", "docs", "downloads",
	"get started", "get in touch", "learn more", "read more", "sign up",
	"sign in", "log in", "log out", "register", "subscribe", "newsletter",
	"privacy policy", "terms of service", "terms of use", "cookie policy",
	"legal", "sitemap", "search", "menu", "skip to content",
	"request a demo", "book a demo", "free trial", "our story",
	"our mission", "who we are", "what we do", "leadership",
	"investor relations", "media kit", "white papers", "webinars",

	// German
	"startseite", "über uns", "uber uns", "kontakt", "kontaktieren",
	"unser team", "karriere", "stellenangebote", "preise", "produkte",
	"leistungen", "impressum", "datenschutz", "mehr erfahren",
	"jetzt starten", "anmelden", "registrieren", "neuigkeiten",

	// French
	"accueil", "qui sommes-nous", "qui sommes nous", "contactez-nous",
	"contactez nous", "notre équipe", "notre equipe", "carrières",
	"carrieres", "tarifs", "produits", "nos services", "actualités",
	"actualites", "en savoir plus", "mentions légales", "mentions legales",
	"nous rejoindre", "s'inscrire", "se connecter",

	// Spanish
	"inicio", "sobre nosotros", "quiénes somos", "quienes somos",
	"contáctanos", "contactanos", "contacto", "nuestro equipo", "empleo",
	"precios", "productos", "servicios", "noticias", "más información",
	"mas informacion", "trabaja con nosotros", "registrarse",
	"iniciar sesión", "iniciar sesion",

	// Italian
	"chi siamo", "contattaci", "contatti", "il nostro team", "lavora con noi",
	"prezzi", "prodotti", "servizi", "notizie", "scopri di più",
	"scopri di piu", "accedi", "registrati",

	// Portuguese
	"sobre nós", "sobre nos", "fale conosco", "contato", "nossa equipe",
	"trabalhe conosco", "preços", "precos", "produtos", "serviços",
	"servicos", "notícias", "noticias", "saiba mais", "cadastre-se",
	"entrar",

	// Dutch
	"over ons", "neem contact op", "ons team", "werken bij", "prijzen",
	"producten", "diensten", "nieuws", "lees meer", "inloggen",
	"registreren",

	// Swedish
	"om oss", "kontakta oss", "vårt team", "vart team", "lediga jobb",
	"priser", "produkter", "tjänster", "tjanster", "nyheter", "läs mer",
	"las mer", "logga in",

	// Danish / Norwegian
	"kontakt os", "vores team", "ledige stillinger", "tjenester",
	"nyheder", "les mer", "læs mere", "logg inn", "log ind",

	// Polish
	"o nas", "skontaktuj się", "skontaktuj sie", "nasz zespół",
	"nasz zespol", "oferty pracy", "cennik", "produkty", "usługi",
	"uslugi", "aktualności", "aktualnosci", "dowiedz się więcej",
	"dowiedz sie wiecej", "zaloguj się", "zaloguj sie",
}
