package engine

import "github.com/zen-systems/medtriage/pkg/schema"

// Boundary explanation used when a case could not be triaged at all.
const (
	referFallbackEN = "Specialized care not available in current hospital."
	referFallbackKN = "ಸ್ಥಿತಿಗಾಗಿ ಪ್ರಸ್ತುತ ಆಸ್ಪತ್ರೆಯಲ್ಲಿ ಲಭ್ಯವಿಲ್ಲದ ವಿಶೇಷ ವಿಭಾಗದ ಅಗತ್ಯವಿದೆ."
	referFallbackHI = "इस स्थिति के लिए वर्तमान अस्पताल में उपलब्ध नहीं विशेष विभाग की आवश्यकता है।"
)

// FallbackRecord is the schema-conformant REFER record returned when triage fails.
func FallbackRecord(symptoms string, age *int, gender schema.Gender) schema.Record {
	return schema.Record{
		Symptoms:        symptoms,
		Age:             age,
		Gender:          gender,
		MedicalCategory: schema.CategoryRefer,
		Severity:        schema.SeverityLow,
		AssignedDoctor:  schema.NoneValue,
		RoomAllotted:    schema.NoneValue,
		Status:          schema.StatusRefer,
		Explainability: schema.Explainability{
			KeyKeywords:   []string{},
			ExplanationEN: referFallbackEN,
			ExplanationKN: referFallbackKN,
			ExplanationHI: referFallbackHI,
		},
		Metadata: schema.Metadata{Language: schema.LangEnglish, LanguageRatio: 1.0, Method: schema.MethodNoMatch},
	}
}
