// Package patterns holds the static multilingual pattern tables used by the
// classifiers. Tables are built once at package init and never mutated.
package patterns

import "github.com/zen-systems/medtriage/pkg/schema"

// departmentKeywords maps each department to its keywords in English, Kannada and Hindi,
// in the order they are scored.
var departmentKeywords = map[schema.Department][]string{
	schema.Cardiology: {
		"heart", "chest pain", "cardiac", "palpitation", "bp high", "hypertension", "heart attack",
		"ಹೃದಯ", "ಛಾತಿನೋವು", "ರಕ್ತದೊತ್ತಡ", "ಹೃದಯಾಘಾತ",
		"दिल", "हृदय", "छाती दर्द", "दिल का दौरा",
	},
	schema.Orthopedics: {
		"fracture", "bone", "accident", "fall", "joint", "knee", "leg", "arm", "shoulder",
		"swelling", "cannot walk", "dislocation", "trauma",
		"ಮುರಿತ", "ಎಲುಬು", "ಅಪಘಾತ", "ಪತನ", "ಸಂಧಿ", "ಕಾಲು",
		"फ्रैक्चर", "हड्डी", "गिरना", "दुर्घटना", "जोड़",
	},
	schema.Neurology: {
		"brain", "stroke", "seizure", "paralysis", "headache", "migraine", "numbness", "dizziness",
		"unconscious", "fits", "neurological",
		"ಮೆದುಳು", "ಪಕ್ಷವಾತ", "ಮೂರ್ಛೆ", "ಪಾರ್ಶ್ವವಾಯು", "ತಲೆಸುತ್ತು",
		"दिमाग", "स्ट्रोक", "दौरा", "पक्षाघात", "चक्कर",
	},
	schema.Gastroenterology: {
		"stomach", "abdominal pain", "liver", "vomiting", "blood in stool", "digestion", "gastric",
		"ulcer", "diarrhea", "constipation", "acidity",
		"ಹೊಟ್ಟೆ", "ಜಠರ", "ರಕ್ತವಾಂತಿ", "ಜೀರ್ಣ",
		"पेट", "जिगर", "उल्टी", "मल में खून", "पाचन",
	},
	schema.Gynecology: {
		"pregnancy", "menstrual", "periods", "vaginal", "uterus", "pcod", "obstetric",
		"missed period", "pregnant", "delivery", "gynecology",
		"ಗರ್ಭಧಾರಣೆ", "ಮುಟ್ಟು", "ಪ್ರಸೂತಿ", "ಗರ್ಭಾಶಯ",
		"गर्भावस्था", "मासिक", "प्रसूति", "गर्भाशय", "माहवारी",
	},
	schema.Pediatrics: {
		"child", "baby", "infant", "newborn", "fever in child", "vaccination", "growth",
		"cough baby", "child crying", "not eating baby",
		"ಮಗು", "ಶಿಶು", "ಬಾಣಂತಿ", "ಮಕ್ಕಳ", "ಲಸಿಕೆ",
		"बच्चा", "शिशु", "नवजात", "बच्चों", "टीकाकरण",
	},
	schema.ENT: {
		"ear", "nose", "throat", "hearing", "sinus", "tonsils", "cold", "cough",
		"sore throat", "ear pain", "nasal",
		"ಕಿವಿ", "ಮೂಗು", "ಗಂಟಲು", "ಸೈನಸ್",
		"कान", "नाक", "गला", "साइनस", "गले में दर्द",
	},
	schema.Dermatology: {
		"skin", "rash", "acne", "pimples", "allergy", "itching", "eczema", "psoriasis",
		"fungal", "hair fall", "skin infection",
		"ತ್ವಚೆ", "ದದ್ದು", "ಅಲರ್ಜಿ", "ನೊರ", "ಎಕ್ಜಿಮಾ",
		"त्वचा", "चकत्ते", "एलर्जी", "खुजली", "एग्जिमा",
	},
	schema.EmergencyMedicine: {
		"emergency", "urgent", "critical", "acute", "severe", "immediate", "life threatening",
		"shock", "collapsed", "ambulance", "icu", "911",
		"ತುರ್ತು", "ತೀವ್ರ", "ಆಪತ್ತು", "ತಕ್ಷಣ",
		"आपातकाल", "तत्काल", "गंभीर", "एम्बुलेंस",
	},
	schema.GeneralMedicine: {
		"fever", "diabetes", "bp", "thyroid", "weakness", "infection", "general checkup",
		"body pain", "weight loss", "fatigue",
		"ಜ್ವರ", "ಮಧುಮೇಹ", "ರಕ್ತದೊತ್ತಡ", "ಥೈರಾಯ್ಡ್", "ದುರ್ಬಲತೆ",
		"बुखार", "मधुमेह", "थायरॉइड", "कमजोरी", "वजन घटना",
	},
}

// DepartmentKeywords returns a copy of the keyword list of d.
func DepartmentKeywords(d schema.Department) []string {
	kws := departmentKeywords[d]
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// Translation is a department display name in the three supported languages.
type Translation struct {
	EN string `json:"en" yaml:"en"`
	KN string `json:"kn" yaml:"kn"`
	HI string `json:"hi" yaml:"hi"`
}

var translations = map[schema.Department]Translation{
	schema.Cardiology:        {EN: "Cardiology", KN: "ಹೃದಯರೋಗ ವಿಭಾಗ", HI: "हृदय रोग विभाग"},
	schema.Orthopedics:       {EN: "Orthopedics", KN: "ಅಸ್ಥಿ ಮತ್ತು ಸಂಧಿ ರೋಗ ವಿಭಾಗ", HI: "अस्थि एवं जोड़ रोग विभाग"},
	schema.Neurology:         {EN: "Neurology", KN: "ನರವಿಜ್ಞಾನ ವಿಭಾಗ", HI: "न्यूरोलॉजी विभाग"},
	schema.Gastroenterology:  {EN: "Gastroenterology", KN: "ಜೀರ್ಣಾಂಗ ರೋಗ ವಿಭಾಗ", HI: "गैस्ट्रोएंटरोलॉजी विभाग"},
	schema.Gynecology:        {EN: "Gynecology", KN: "ಪ್ರಸೂತಿ ಮತ್ತು ಸ್ತ್ರೀರೋಗ ವಿಭಾಗ", HI: "प्रसूति एवं स्त्री रोग विभाग"},
	schema.Pediatrics:        {EN: "Pediatrics", KN: "ಮಕ್ಕಳ ವೈದ್ಯಕೀಯ ವಿಭಾಗ", HI: "बाल रोग विभाग"},
	schema.ENT:               {EN: "ENT", KN: "ಕಿವಿ-ಮೂಗು-ಗಂಟಲು ವಿಭಾಗ", HI: "कान-नाक-गला विभाग"},
	schema.Dermatology:       {EN: "Dermatology", KN: "ಚರ್ಮರೋಗ ವಿಭಾಗ", HI: "त्वचा रोग विभाग"},
	schema.EmergencyMedicine: {EN: "Emergency Medicine", KN: "ತುರ್ತು ವೈದ್ಯಕೀಯ ವಿಭಾಗ", HI: "आपातकालीन चिकित्सा विभाग"},
	schema.GeneralMedicine:   {EN: "General Medicine", KN: "ಸಾಮಾನ್ಯ ವೈದ್ಯಕೀಯ ವಿಭಾಗ", HI: "सामान्य चिकित्सा विभाग"},
}

// DepartmentTranslation returns the display names of d.
func DepartmentTranslation(d schema.Department) Translation {
	return translations[d]
}
