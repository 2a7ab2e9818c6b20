package checks

import "strings"

// Preset is a named, ready-to-use pattern for common formats.
type Preset struct {
	Name     string
	Pattern  string
	Examples string
	Notes    string
}

// Presets is the built-in pattern library. Patterns are practical, not
// exhaustive: they catch the shapes people actually put in CSVs.
var Presets = []Preset{
	{"email", `[\w.%+\-]+@[\w.\-]+\.[A-Za-z]{2,}$`, "example@site.com", "basic email format"},
	{"uk-postcode", `[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2}$`, "SW1A 2AA; NE1 4LP", "simplified, not exhaustive"},
	{"uk-mobile", `07\d{8,10}$`, "07123456789", "digits only"},
	{"date-iso", `\d{4}-\d{2}-\d{2}$`, "2025-10-30", "format check only, not calendar validation"},
	{"date-dmy", `\d{2}/\d{2}/\d{4}$`, "30/10/2025", "format check only"},
	{"time-24h", `(?:[01]\d|2[0-3]):[0-5]\d$`, "09:30; 23:59", "valid hour/minute ranges"},
	{"url", `(https?://)?[\w\-]+(\.[\w\-]+)+[/\w\-.~:?#\[\]@!$&'()*+,;=%]*$`, "https://example.com/path", "loose, practical URL"},
	{"integer", `-?\d+$`, "0; 42; -7", "no decimals"},
	{"decimal", `-?\d+(\.\d+)?$`, "3.14; -0.5; 10", "optional decimals"},
	{"percentage", `\d+(\.\d+)?%$`, "12%; 99.5%", "number followed by %"},
	{"uppercase", `[A-Z]+$`, "ABC; NHS", "A-Z only"},
	{"alnum-code", `[A-Za-z0-9]{6,12}$`, "AB12CD; user007", "letters/digits, 6-12 chars"},
}

// PresetByName looks a preset up case-insensitively.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
