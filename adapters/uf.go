package adapters

import "strings"

// ufByName maps Brazilian state names to their two-letter UF codes, used as
// a fallback when a payload names a state but supplies no abbreviation under
// any known field. Unrecognized names resolve to "" rather than an error;
// the state form's own validation keeps an empty UF from being persisted.
var ufByName = map[string]string{
	"acre":                "AC",
	"alagoas":             "AL",
	"amapa":               "AP",
	"amazonas":            "AM",
	"bahia":               "BA",
	"ceara":               "CE",
	"distrito federal":    "DF",
	"espirito santo":      "ES",
	"goias":               "GO",
	"maranhao":            "MA",
	"mato grosso":         "MT",
	"mato grosso do sul":  "MS",
	"minas gerais":        "MG",
	"para":                "PA",
	"paraiba":             "PB",
	"parana":              "PR",
	"pernambuco":          "PE",
	"piaui":               "PI",
	"rio de janeiro":      "RJ",
	"rio grande do norte": "RN",
	"rio grande do sul":   "RS",
	"rondonia":            "RO",
	"roraima":             "RR",
	"santa catarina":      "SC",
	"sao paulo":           "SP",
	"sergipe":             "SE",
	"tocantins":           "TO",
}

// LookupUF resolves a state name to its UF code, tolerating case and
// accents ("Paraná", "parana" and "PARANA" all resolve to "PR").
// Returns "" for names not in the table.
func LookupUF(name string) string {
	return ufByName[foldName(name)]
}

// foldName lowercases and strips the diacritics that occur in Brazilian
// state names so table lookups survive both spellings.
func foldName(name string) string {
	folded := strings.Map(func(r rune) rune {
		switch r {
		case 'á', 'à', 'â', 'ã':
			return 'a'
		case 'é', 'ê':
			return 'e'
		case 'í':
			return 'i'
		case 'ó', 'ô', 'õ':
			return 'o'
		case 'ú':
			return 'u'
		case 'ç':
			return 'c'
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(strings.Fields(folded), " ")
}
