package patterns

import "regexp"

// Rule is a compiled severity pattern.
// When MinDays is set, the rule only fires if capture group 2 holds a day count >= MinDays.
type Rule struct {
	Name    string
	Re      *regexp.Regexp
	MinDays int
}

func compile(name, expr string) Rule {
	return Rule{Name: name, Re: regexp.MustCompile(expr)}
}

// highRules trigger HIGH severity. Order matters only for reporting; any match wins.
var highRules = []Rule{
	compile("trauma_en", `\b(accident|trauma|fracture|head injury|unconscious|collision|bleeding|heart attack|chest pain|stroke|seizure|paralysis)\b`),
	compile("cancer_en", `\b(cancer\s+emergency|tumor\s+bleeding|cancer\s+bleeding)\b`),
	compile("vehicle_en", `\b(bike accident|car accident|vehicle accident)\b`),
	compile("breathing_en", `\b(cannot breathe|breathlessness|suffocation)\b`),
	compile("high_kn", `(ಅಪಘಾತ|ಆಘಾತ|ಮುರಿತ|ತಲೆಗಾಯ|ಪ್ರಜ್ಞೆಯಿಲ್ಲದ|ಟಕ್ಕರ್|ರಕ್ತಸ್ರಾವ|ಹೃದಯಾಘಾತ|ಛಾತಿನೋವು|ಪಕ್ಷವಾತ|ಮೂರ್ಛೆ|ಪಾರ್ಶ್ವವಾಯು|ಕ್ಯಾನ್ಸರ್ ತುರ್ತು|ಉಸಿರಾಡಲು ಸಾಧ್ಯವಿಲ್ಲ)`),
	compile("high_hi", `(दुर्घटना|आघात|फ्रैक्चर|सिर की चोट|बेहोश|टक्कर|खून बहना|दिल का दौरा|छाती दर्द|स्ट्रोक|दौरा|पक्षाघात|कैंसर आपातकाल|सांस नहीं आ रही)`),
}

// pediatricFever matches a fever mention in any supported language.
var pediatricFever = regexp.MustCompile(`(fe\s*ver|fever|बुखार|ಜ್ವರ)`)

// mediumRules are evaluated in order after the HIGH and pediatric rules.
var mediumRules = []Rule{
	compile("persistence_en", `\b(persistent|continuous|disturbing)\b`),
	compile("infection_en", `\b(infection|infected|swelling|pus)\b`),
	{Name: "fever_duration_en", Re: regexp.MustCompile(`\b(fever)\b.*\b(\d+)\b\s*(day|days)\b`), MinDays: 3},
	compile("daily_life_en", `\b(daily life|cannot sleep|cannot eat|sleep disturbed|appetite loss)\b`),
	compile("medium_kn", `(ನಿರಂತರ|ಸೋಂಕು|ಊತ|ದಿನನಿತ್ಯ|ನಿದ್ರೆ|ಜ್ವರ)`),
	compile("medium_hi", `(लगातार|संक्रमण|सूजन|दैनिक|नींद|भूख|बुखार)`),
}

// feverCatchAll matches any remaining English fever mention. Kannada and Hindi
// fever terms are already covered by the MEDIUM tables.
var feverCatchAll = regexp.MustCompile(`\b(fe\s*ver|fever)\b`)

// HighRules returns the HIGH severity rules.
func HighRules() []Rule { return highRules }

// MediumRules returns the MEDIUM severity rules in evaluation order.
func MediumRules() []Rule { return mediumRules }

// PediatricFever returns the pattern used by the pediatric fever rule.
func PediatricFever() *regexp.Regexp { return pediatricFever }

// FeverCatchAll returns the unconditional fever pattern.
func FeverCatchAll() *regexp.Regexp { return feverCatchAll }
