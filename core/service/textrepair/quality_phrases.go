package textrepair

// knownPhrases maps the compacted, diacritic-stripped, lowercased form
// of a run-together navigation phrase to its readable label. Pure data;
// keys must be produced by CompactKey.
var knownPhrases = map[string]string{
	// English
	"contactus":       "Contact us",
	"contactme":       "Contact me",
	"aboutus":         "About us",
	"aboutme":         "About me",
	"ourteam":         "Our team",
	"meettheteam":     "Meet the team",
	"joinus":          "Join us",
	"joinourteam":     "Join our team",
	"workwithus":      "Work with us",
	"getintouch":      "Get in touch",
	"getstarted":      "Get started",
	"learnmore":       "Learn more",
	"readmore":        "Read more",
	"signup":          "Sign up",
	"signin":          "Sign in",
	"login":           "Log in",
	"logout":          "Log out",
	"privacypolicy":   "Privacy policy",
	"termsofservice":  "Terms of service",
	"termsofuse":      "Terms of use",
	"sitemap":         "Site map",
	"faq":             "FAQ",
	"customersupport": "Customer support",
	"helpcenter":      "Help center",
	"pressreleases":   "Press releases",
	"caselaw":         "Case law",
	"casestudies":     "Case studies",
	"whitepapers":     "White papers",
	"ourstory":        "Our story",
	"ourmission":      "Our mission",
	"whoweare":        "Who we are",
	"whatwedo":        "What we do",
	"requestademo":    "Request a demo",
	"bookademo":       "Book a demo",
	"freetrial":       "Free trial",
	"subscribenow":    "Subscribe now",

	// German
	"uberuns":         "Über uns",
	"kontaktieren":    "Kontaktieren",
	"impressum":       "Impressum",
	"datenschutz":     "Datenschutz",
	"unserteam":       "Unser Team",
	"mehrerfahren":    "Mehr erfahren",
	"jetztstarten":    "Jetzt starten",
	"karriere":        "Karriere",
	"stellenangebote": "Stellenangebote",

	// French
	"quisommesnous":   "Qui sommes-nous",
	"contacteznous":   "Contactez-nous",
	"noussuivre":      "Nous suivre",
	"notreequipe":     "Notre équipe",
	"ensavoirplus":    "En savoir plus",
	"mentionslegales": "Mentions légales",
	"nousrejoindre":   "Nous rejoindre",

	// Spanish
	"sobrenosotros":      "Sobre nosotros",
	"contactanos":        "Contáctanos",
	"nuestroequipo":      "Nuestro equipo",
	"quienessomos":       "Quiénes somos",
	"masinformacion":     "Más información",
	"trabajaconnosotros": "Trabaja con nosotros",

	// Italian
	"chisiamo":     "Chi siamo",
	"contattaci":   "Contattaci",
	"ilnostroteam": "Il nostro team",
	"scopridipiu":  "Scopri di più",
	"lavoraconnoi": "Lavora con noi",

	// Portuguese
	"sobrenos":        "Sobre nós",
	"faleconosco":     "Fale conosco",
	"nossaequipe":     "Nossa equipe",
	"saibamais":       "Saiba mais",
	"trabalheconosco": "Trabalhe conosco",

	// Dutch
	"overons":       "Over ons",
	"neemcontactop": "Neem contact op",
	"onsteam":       "Ons team",
	"leesmeer":      "Lees meer",
	"werkenbij":     "Werken bij",

	// Swedish
	"omoss":       "Om oss",
	"kontaktaoss": "Kontakta oss",
	"vartteam":    "Vårt team",
	"lasmer":      "Läs mer",

	// Danish / Norwegian
	"kontaktos": "Kontakt os",
	"voresteam": "Vores team",
	"lesmer":    "Les mer",

	// Polish
	"onas":             "O nas",
	"skontaktujsie":    "Skontaktuj się",
	"naszzespol":       "Nasz zespół",
	"dowiedzsiewiecej": "Dowiedz się więcej",
}
