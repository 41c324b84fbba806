package patterns

// referKeywords name out-of-scope specialties (ophthalmology, dental, psychiatry, urology).
var referKeywords = []string{
	"eye", "vision", "cataract", "ophthalmology", "dental", "tooth", "psychiatry",
	"mental", "urology", "urinary", "kidney stone", "dentistry",
	"आँख", "दांत", "मानसिक", "मनोचिकित्सा", "मूत्र",
	"ಕಣ್ಣು", "ದಂತ", "ಮಾನಸಿಕ", "ಮೂತ್ರ", "ಕಣ್ಣಿನ",
}

// ReferKeywords returns a copy of the out-of-scope keyword list in table order.
func ReferKeywords() []string {
	out := make([]string, len(referKeywords))
	copy(out, referKeywords)
	return out
}
