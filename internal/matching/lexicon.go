package matching

// The lexicon is the only "configuration" of the engine: fixed vocabulary
// tables driving every heuristic text match. It is built once and injected
// read-only; scorers never mutate it.
//
// Several constants below (weak industry signal, semantic group score, region
// scores, gate penalty) are empirically chosen and kept for behavioral parity
// with the production marketplace. They are tunable, not load-bearing.

type industryEntry struct {
	name     string
	keywords []string
}

type semanticGroup struct {
	name     string
	keywords []string
}

// domainCluster pairs the keywords identifying a professional domain with
// the keywords considered incompatible with it.
type domainCluster struct {
	name         string
	keywords     []string
	incompatible []string
}

type cityRegion struct {
	country   string
	continent string
}

type Lexicon struct {
	skills     map[string]struct{}
	industries []industryEntry
	groups     []semanticGroup
	clusters   []domainCluster
	stopWords  map[string]struct{}
	regions    map[string]cityRegion
	levels     map[string]int
	salaries   map[int]int
}

// DefaultLexicon builds the baked-in vocabulary tables. The returned value is
// safe for concurrent use since nothing ever writes to it after construction.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		skills:     toSet(recognizedSkills),
		industries: industryTable,
		groups:     semanticGroups,
		clusters:   domainClusters,
		stopWords:  toSet(titleStopWords),
		regions:    cityRegions,
		levels:     experienceLevels,
		salaries:   averageSalaryByLevel,
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var recognizedSkills = []string{
	// tech
	"javascript", "typescript", "react", "vue", "angular", "node", "nodejs",
	"python", "java", "golang", "php", "ruby", "c++", "c#", "sql", "nosql",
	"html", "css", "docker", "kubernetes", "aws", "azure", "gcp", "git",
	"linux", "devops", "terraform", "agile", "scrum", "api", "rest", "graphql",
	// design
	"figma", "photoshop", "illustrator", "sketch", "ux", "ui", "wireframe",
	// marketing / commerce
	"seo", "sea", "google ads", "crm", "emailing", "copywriting",
	"vente", "prospection", "négociation", "e-commerce",
	// finance / admin
	"comptabilité", "paie", "audit", "fiscalité", "excel", "sap", "trésorerie",
	// legal
	"droit", "contentieux", "rgpd", "contrats",
	// health
	"soins", "anesthésie", "radiologie", "pharmacie", "kinésithérapie",
	// education
	"pédagogie", "formation", "e-learning",
	// general
	"management", "communication", "gestion de projet", "anglais",
}

var industryTable = []industryEntry{
	{name: "tech", keywords: []string{
		"javascript", "react", "développeur", "frontend", "web",
	}},
	{name: "informatique", keywords: []string{
		"python", "java", "développeur", "logiciel", "devops",
	}},
	{name: "santé", keywords: []string{
		"médecin", "infirmier", "soins", "patient", "clinique", "hôpital", "pharmacie",
	}},
	{name: "finance", keywords: []string{
		"comptabilité", "audit", "fiscalité", "banque", "paie", "trésorerie", "analyste",
	}},
	{name: "marketing", keywords: []string{
		"seo", "communication", "réseaux sociaux", "contenu", "campagne", "publicité", "growth",
	}},
	{name: "juridique", keywords: []string{
		"avocat", "juriste", "droit", "contrat", "contentieux", "rgpd",
	}},
	{name: "éducation", keywords: []string{
		"enseignant", "professeur", "formation", "pédagogie", "cours", "e-learning",
	}},
	{name: "commerce", keywords: []string{
		"vente", "commercial", "négociation", "client", "prospection", "e-commerce",
	}},
	{name: "design", keywords: []string{
		"figma", "photoshop", "ux", "ui", "graphisme", "maquette", "identité visuelle",
	}},
	{name: "btp", keywords: []string{
		"chantier", "maçonnerie", "génie civil", "gros œuvre", "conducteur de travaux",
	}},
}

var semanticGroups = []semanticGroup{
	{name: "développement", keywords: []string{
		"développeur", "developer", "programmeur", "ingénieur logiciel",
		"software", "fullstack", "full-stack", "backend", "frontend", "devops", "data engineer",
	}},
	{name: "design", keywords: []string{
		"designer", "graphiste", "ux", "ui", "directeur artistique", "webdesigner",
	}},
	{name: "marketing", keywords: []string{
		"marketing", "communication", "growth", "seo", "community manager", "chargé de communication",
	}},
	{name: "medical", keywords: []string{
		"médecin", "infirmier", "infirmière", "docteur", "soignant", "pharmacien", "aide-soignant",
	}},
	{name: "juridique", keywords: []string{
		"avocat", "juriste", "notaire", "clerc",
	}},
	{name: "finance", keywords: []string{
		"comptable", "auditeur", "analyste financier", "contrôleur de gestion", "gestionnaire de paie",
	}},
	{name: "éducation", keywords: []string{
		"enseignant", "professeur", "formateur", "instituteur",
	}},
	{name: "commercial", keywords: []string{
		"commercial", "vendeur", "business developer", "account manager", "chargé de clientèle",
	}},
}

// Cluster order is fixed: the gate reports the first match.
var domainClusters = []domainCluster{
	{
		name: "médical",
		keywords: []string{
			"médecin", "infirmier", "infirmière", "chirurgien", "clinique",
			"hôpital", "patient", "soins", "pharmacien", "aide-soignant",
		},
		incompatible: []string{
			"développeur", "javascript", "logiciel", "informatique", "devops",
			"comptabilité", "maçonnerie", "soudeur",
		},
	},
	{
		name: "tech",
		keywords: []string{
			"développeur", "logiciel", "javascript", "python", "informatique",
			"devops", "data engineer",
		},
		incompatible: []string{
			"médecin", "infirmier", "chirurgien", "soins", "avocat", "notaire",
			"maçonnerie", "cuisinier",
		},
	},
	{
		name: "juridique",
		keywords: []string{
			"avocat", "juriste", "notaire", "contentieux", "plaidoirie",
		},
		incompatible: []string{
			"développeur", "infirmier", "soudeur", "cuisinier", "chauffeur",
		},
	},
	{
		name: "éducation",
		keywords: []string{
			"enseignant", "professeur", "instituteur", "pédagogie",
		},
		incompatible: []string{
			"chirurgien", "soudeur", "plombier", "trader",
		},
	},
}

// Words too generic to signal a shared role between a candidate title and a
// job title. Seniority qualifiers are dropped here because seniority is
// scored by its own dimension. Tokens of one or two characters are dropped
// before this list applies.
var titleStopWords = []string{
	"des", "les", "une", "aux", "pour", "avec", "chez", "sur", "dans",
	"h/f", "f/h", "the", "and", "for", "with",
	"senior", "junior", "débutant", "expert", "confirmé", "confirmée", "stagiaire",
}

var cityRegions = map[string]cityRegion{
	"paris":     {country: "france", continent: "europe"},
	"lyon":      {country: "france", continent: "europe"},
	"marseille": {country: "france", continent: "europe"},
	"toulouse":  {country: "france", continent: "europe"},
	"bordeaux":  {country: "france", continent: "europe"},
	"lille":     {country: "france", continent: "europe"},
	"nantes":    {country: "france", continent: "europe"},
	"bruxelles": {country: "belgique", continent: "europe"},
	"liège":     {country: "belgique", continent: "europe"},
	"genève":    {country: "suisse", continent: "europe"},
	"lausanne":  {country: "suisse", continent: "europe"},
	"londres":   {country: "royaume-uni", continent: "europe"},
	"berlin":    {country: "allemagne", continent: "europe"},
	"montréal":  {country: "canada", continent: "amérique du nord"},
	"québec":    {country: "canada", continent: "amérique du nord"},
	"new york":  {country: "états-unis", continent: "amérique du nord"},
	"casablanca": {country: "maroc", continent: "afrique"},
	"rabat":      {country: "maroc", continent: "afrique"},
	"tunis":      {country: "tunisie", continent: "afrique"},
	"dakar":      {country: "sénégal", continent: "afrique"},
	"abidjan":    {country: "côte d'ivoire", continent: "afrique"},
}

// The closed seven-level experience vocabulary. Unrecognized non-empty
// values fall back to defaultExperienceLevel; fully absent values score 0
// before this table is consulted.
var experienceLevels = map[string]int{
	"débutant":      1,
	"junior":        2,
	"intermédiaire": 3,
	"senior":        4,
	"expert":        5,
	"lead":          6,
	"manager":       7,
}

const defaultExperienceLevel = 3

var averageSalaryByLevel = map[int]int{
	1: 28000,
	2: 32000,
	3: 45000,
	4: 55000,
	5: 65000,
	6: 70000,
	7: 75000,
}

const defaultAverageSalary = 45000

func (l *Lexicon) experienceLevel(value string) int {
	if level, ok := l.levels[value]; ok {
		return level
	}
	return defaultExperienceLevel
}

func (l *Lexicon) averageSalary(value string) int {
	if value == "" {
		return defaultAverageSalary
	}
	if salary, ok := l.salaries[l.experienceLevel(value)]; ok {
		return salary
	}
	return defaultAverageSalary
}
