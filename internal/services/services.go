// Package services holds the static catalog of roofing services. The catalog
// is identical for the default site and every demo; only the surrounding
// chrome and uploaded imagery vary per tenant.
package services

// Service is one catalog entry. Position is the 1-based slot a demo's
// uploaded service image maps onto.
type Service struct {
	Slug            string
	Position        int
	Title           string
	Description     string
	LongDescription string
	Benefits        []string
	Process         []string
}

var catalog = []Service{
	{
		Slug:            "dakbedekking",
		Position:        1,
		Title:           "Dakbedekking",
		Description:     "Complete dakbedekkingen voor nieuwbouw en renovatie",
		LongDescription: "Wij leveren complete dakbedekkingen voor zowel nieuwbouw als renovatieprojecten. Of u nu kiest voor traditionele dakpannen, leien of moderne dakbedekking, wij werken uitsluitend met hoogwaardige A-merk materialen die zorgen voor een duurzaam en betrouwbaar resultaat.",
		Benefits: []string{
			"Hoogwaardige A-merk materialen",
			"Professionele vakmannen met jarenlange ervaring",
			"10 jaar garantie op materiaal en vakmanschap",
			"Snelle en efficiënte uitvoering",
			"Gratis inspectie en vrijblijvende offerte",
		},
		Process: []string{
			"Gratis inspectie en advies op locatie",
			"Gedetailleerde offerte met duidelijke prijsopgave",
			"Planning en voorbereiding van de werkzaamheden",
			"Professionele uitvoering door ervaren dakdekkers",
			"Oplevering en garantieverstrekking",
		},
	},
	{
		Slug:            "plat-dak",
		Position:        2,
		Title:           "Plat Dak Specialist",
		Description:     "Specialist in platte daken met EPDM en bitumen",
		LongDescription: "Als specialist in platte daken hebben wij ruime ervaring met EPDM rubber, bitumen en andere moderne dakbedekkingsmaterialen. Wij bieden complete oplossingen voor nieuwbouw, renovatie en onderhoud van platte daken.",
		Benefits: []string{
			"Specialistische kennis van platte daken",
			"EPDM rubber met 30+ jaar levensduur",
			"Perfecte waterafvoer en vochtbeheersing",
			"Energiezuinige isolatie-opties",
			"Onderhoudsvriendelijke oplossingen",
		},
		Process: []string{
			"Technische inspectie van het huidige dak",
			"Advies over materiaalkeuze en isolatie",
			"Offerte inclusief alle werkzaamheden",
			"Verwijdering oude dakbedekking indien nodig",
			"Installatie nieuwe waterdichte dakbedekking",
		},
	},
	{
		Slug:            "dakreparatie",
		Position:        3,
		Title:           "Dakreparatie",
		Description:     "Snelle en professionele reparatie van uw dak",
		LongDescription: "Een lekkend dak vraagt om snelle actie. Wij zijn specialist in dakreparaties en kunnen binnen 24 uur ter plaatse zijn voor spoedklussen. Kleine reparaties voorkomen grote schade en hoge kosten.",
		Benefits: []string{
			"Spoedservice binnen 24 uur mogelijk",
			"Directe diagnose en oplossing",
			"Preventief onderhoud om toekomstige schade te voorkomen",
			"Eerlijke prijzen zonder verrassingen",
			"Garantie op alle reparatiewerkzaamheden",
		},
		Process: []string{
			"Telefonische melding van het probleem",
			"Spoedafspraak voor inspectie (indien urgent)",
			"Diagnose en prijsopgave ter plaatse",
			"Directe reparatie of planning indien mogelijk",
			"Controle en garantie op de reparatie",
		},
	},
	{
		Slug:            "dakisolatie",
		Position:        4,
		Title:           "Dakisolatie",
		Description:     "Bespaar op energiekosten met professionele dakisolatie",
		LongDescription: "Goed geïsoleerde daken kunnen tot 30% op uw energiekosten besparen. Wij isoleren zowel platte als hellende daken volgens de laatste bouwvoorschriften en isolatienormen.",
		Benefits: []string{
			"Tot 30% besparing op energiekosten",
			"Beter wooncomfort zomer en winter",
			"Conform nieuwste isolatie-eisen",
			"Subsidies en fiscale voordelen mogelijk",
			"Verhoogt waarde van uw woning",
		},
		Process: []string{
			"Energiescan en advies over isolatiewaarde",
			"Keuze uit verschillende isolatiematerialen",
			"Offerte inclusief mogelijke subsidies",
			"Professionele installatie zonder overlast",
			"Oplevering met isolatiecertificaat",
		},
	},
	{
		Slug:            "dakgoten",
		Position:        5,
		Title:           "Dakgoten & Afvoer",
		Description:     "Installatie en onderhoud van dakgoten",
		LongDescription: "Goed functionerende dakgoten en regenwaterafvoer zijn essentieel voor de bescherming van uw woning. Wij verzorgen de installatie, reparatie en onderhoud van dakgoten, regenpijpen en complete afvoersystemen.",
		Benefits: []string{
			"Voorkomt vochtschade aan gevel en fundering",
			"Verschillende materialen: zink, koper, aluminium",
			"Professionele montage met goede afschot",
			"Reinigingsservice en onderhoud",
			"Bladvangers voor minder onderhoud",
		},
		Process: []string{
			"Inspectie van huidige dakgoten en afvoer",
			"Advies over materiaal en afmetingen",
			"Offerte voor nieuw of reparatie",
			"Installatie of reparatie door vakmannen",
			"Controle en testen van de waterafvoer",
		},
	},
	{
		Slug:            "dakonderhoud",
		Position:        6,
		Title:           "Dakonderhoud",
		Description:     "Regelmatig onderhoud verlengt de levensduur",
		LongDescription: "Preventief dakonderhoud is de sleutel tot een lang meegaand dak. Wij bieden onderhoudscontracten op maat waarbij wij uw dak jaarlijks inspecteren en direct kleine problemen verhelpen.",
		Benefits: []string{
			"Voorkomt dure reparaties en vervanging",
			"Verlengt levensduur van uw dak",
			"Jaarlijkse inspectie en rapportage",
			"Direct herstel van kleine gebreken",
			"Vaste contactpersoon en planning",
		},
		Process: []string{
			"Opstellen onderhoudscontract op maat",
			"Jaarlijkse inspectie van het dak",
			"Reiniging van dakgoten en afvoeren",
			"Klein onderhoud direct uitgevoerd",
			"Rapportage en advies voor toekomst",
		},
	},
}

// All returns the catalog in display order.
func All() []Service {
	return catalog
}

// BySlug looks up a service; ok is false for unknown slugs, which render a
// not-found page without touching the settings store.
func BySlug(slug string) (Service, bool) {
	for _, s := range catalog {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}
