package explain

import "github.com/zen-systems/medtriage/pkg/schema"

type text struct {
	en, kn, hi string
}

type template struct {
	causes       text
	severityHigh text
}

var templates = map[schema.Department]template{
	schema.Orthopedics: {
		causes: text{
			en: "Traumatic injury with suspected bone fracture or joint dislocation detected",
			kn: "ಆಘಾತದ ಗಾಯ ಮತ್ತು ಮುರಿತ (ಮುರಿತ) ಅಥವಾ ಸಂಧಿ ತಪ್ಪಿರುವ ಸಾಧ್ಯತೆ ಪತ್ತೆಯಾಯಿತು",
			hi: "आघात चोट में फ्रैक्चर या जोड़ उतरने की संभावना",
		},
		severityHigh: text{
			en: "Rule #2: Any accident/trauma/fracture requires HIGH severity emergency protocol",
			kn: "ನಿಯಮ #2: ಯಾವುದೇ ಅಪಘಾತ/ಆಘಾತ/ಮುರಿತವು HIGH ಗಂಭೀರತೆಯ ತುರ್ತು ಪ್ರೋಟೋಕಾಲ್ ಅಗತ್ಯ",
			hi: "नियम #2: कोई भी दुर्घटना/आघात/फ्रैक्चर HIGH गंभीरता आपातकालीन प्रोटोकॉल मांगता है",
		},
	},
	schema.Cardiology: {
		causes: text{
			en: "Cardiovascular symptoms suggesting possible cardiac ischemia or arrhythmia",
			kn: "ಹೃದಯ ಅಲ್ಪರಕ್ತ ಪೂರೈಕೆ ಅಥವಾ ಅನಿಯಮಿತ ಬಡಿತದ ಸಾಧ್ಯತೆಯಿರುವ ಹೃದಯ ಸಂಬಂಧಿತ ಲಕ್ಷಣಗಳು",
			hi: "हृदय रक्ताभाव या अनियमित धड़कन की संभावना वाले हृदय संबंधी लक्षण",
		},
		severityHigh: text{
			en: "Rule: Chest pain and cardiac symptoms require HIGH severity assessment",
			kn: "ನಿಯಮ: ಛಾತಿನೋವು ಮತ್ತು ಹೃದಯದ ಲಕ್ಷಣಗಳು HIGH ಗಂಭೀರತೆ ಮೌಲ್ಯಮಾಪನ ಅಗತ್ಯ",
			hi: "नियम: छाती दर्द और हृदय लक्षण HIGH गंभीरता मूल्यांकन मांगते हैं",
		},
	},
	schema.Neurology: {
		causes: text{
			en: "Neurological deficits indicating possible stroke, seizure, or nerve damage",
			kn: "ಪಕ್ಷವಾತ, ಮೂರ್ಛೆ ಅಥವಾ ನರ ಹಾನಿಯ ಸಾಧ್ಯತೆಯಿರುವ ನರವೈಜ್ಞಾನಿಕ ಕೊರತೆಗಳು",
			hi: "स्ट्रोक, दौरा या नर्व क्षति की संभावना वाले न्यूरोलॉजिकल कमजोरियां",
		},
		severityHigh: text{
			en: "Rule: Stroke symptoms, seizures, paralysis are HIGH severity time-critical",
			kn: "ನಿಯಮ: ಪಕ್ಷವಾತ ಲಕ್ಷಣಗಳು, ಮೂರ್ಛೆ, ಪಾರ್ಶ್ವವಾಯು HIGH ಗಂಭೀರತೆಯ ಟೈಮ್-ಕ್ರಿಟಿಕಲ್",
			hi: "नियम: स्ट्रोक लक्षण, दौरे, पक्षाघात HIGH गंभीरता टाइम-क्रिटिकल हैं",
		},
	},
	schema.Gastroenterology: {
		causes: text{
			en: "Gastrointestinal dysfunction with abdominal pathology",
			kn: "ಉದರ ಸಮಸ್ಯೆಗಳೊಂದಿಗೆ ಜೀರ್ಣಾಂಗ ದೋಷಗಳ ಸೂಚನೆ",
			hi: "पेट संबंधी विकृति के साथ गैस्ट्रोइंटेस्टाइनल समस्या",
		},
		severityHigh: text{
			en: "Rule: Vomiting blood or severe abdominal pain indicates HIGH severity",
			kn: "ನಿಯಮ: ರಕ್ತವಾಂತಿಯ ಉದರದ ತೀವ್ರ ನೋವು HIGH ಗಂಭೀರತೆಯನ್ನು ಸೂಚಿಸುತ್ತದೆ",
			hi: "नियम: खून की उल्टी या गंभीर पेट दर्द HIGH गंभीरता दर्शाता है",
		},
	},
	schema.Gynecology: {
		causes: text{
			en: "Reproductive system symptoms requiring obstetric/gynecological evaluation",
			kn: "ಪ್ರಸೂತಿ/ಸ್ತ್ರೀರೋಗಶಾಸ್ತ್ರದ ಮೌಲ್ಯಮಾಪನದ ಅಗತ್ಯವಿರುವ ಪ್ರಜನನ ವ್ಯವಸ್ಥೆಯ ಲಕ್ಷಣಗಳು",
			hi: "प्रसूति/स्त्री रोग मूल्यांकन की आवश्यकता वाली प्रजनन तंत्र लक्षण",
		},
		severityHigh: text{
			en: "Rule: Pregnancy complications or severe bleeding require HIGH severity",
			kn: "ನಿಯಮ: ಗರ್ಭಧಾರಣೆಯ ಸಮಸ್ಯೆಗಳು ಅಥವಾ ತೀವ್ರ ರಕ್ತಸ್ರಾವ HIGH ಗಂಭೀರತೆ ಅಗತ್ಯ",
			hi: "नियम: गर्भावस्था जटिलताएं या गंभीर रक्तस्राव HIGH गंभीरता मांगते हैं",
		},
	},
	schema.Pediatrics: {
		causes: text{
			en: "Pediatric patient (age <14) with age-specific medical condition",
			kn: "ಮಕ್ಕಳ ರೋಗಿ (ವಯಸ್ಸು <14) ವಯಸ್ಸು-ನಿರ್ದಿಷ್ಟ ವೈದ್ಯಕೀಯ ಸ್ಥಿತಿಯೊಂದಿಗೆ",
			hi: "बाल रोगी (उम्र <14) उम्र-विशिष्ट चिकित्सा स्थिति के साथ",
		},
		severityHigh: text{
			en: "Rule: Children with trauma/fever/severe symptoms require HIGH severity",
			kn: "ನಿಯಮ: ಪೆಠೋಲೋಗಿ/ಜ್ವರ/ತೀವ್ರ ಲಕ್ಷಣಗಳಿರುವ ಮಕ್ಕಳಿಗೆ HIGH ಗಂಭೀರತೆ ಅಗತ್ಯ",
			hi: "नियम: आघात/बुखार/गंभीर लक्षण वाले बच्चों को HIGH गंभीरता चाहिए",
		},
	},
	schema.ENT: {
		causes: text{
			en: "Otorhinolaryngology symptoms affecting ear, nose, or throat",
			kn: "ಕಿವಿ, ಮೂಗು ಅಥವಾ ಗಂಟಲನ್ನು ಪ್ರಭಾವಿಸುವ ಓಟೋರೈನೋಲೇರಿಂಗೋಲಾಜಿ ಲಕ್ಷಣಗಳು",
			hi: "कान, नाक या गले को प्रभावित करने वाले ओटोराइनोलैरिंगोलॉजी लक्षण",
		},
		severityHigh: text{
			en: "Rule: Severe airway obstruction or bleeding requires HIGH severity",
			kn: "ನಿಯಮ: ತೀವ್ರ ಉಸಿರಾಟದ ಅವರೋಧ ಅಥವಾ ರಕ್ತಸ್ರಾವ HIGH ಗಂಭೀರತೆ ಅಗತ್ಯ",
			hi: "नियम: गंभीर सांस रोक या खून बहना HIGH गंभीरता मांगता है",
		},
	},
	schema.Dermatology: {
		causes: text{
			en: "Dermatological condition involving skin, hair, or nails",
			kn: "ತ್ವಚೆ, ಕೇಶ ಅಥವಾ ಉಗುರುಗಳನ್ನು ಒಳಗೊಂಡಿರುವ ಚರ್ಮವಿಜ್ಞಾನ ಸ್ಥಿತಿ",
			hi: "त्वचा, बाल या नाखून को शामिल करने वाली त्वचा रोग स्थिति",
		},
		severityHigh: text{
			en: "Rule: Severe allergic reactions or infections require HIGH severity",
			kn: "ನಿಯಮ: ತೀವ್ರ ಅಲರ್ಜಿ ಪ್ರತಿಕ್ರಿಯೆಗಳು ಅಥವಾ ಸೋಂಕುಗಳು HIGH ಗಂಭೀರತೆ ಅಗತ್ಯ",
			hi: "नियम: गंभीर एलर्जी प्रतिक्रिया या संक्रमण HIGH गंभीरता मांगते हैं",
		},
	},
	schema.EmergencyMedicine: {
		causes: text{
			en: "Critical emergency requiring immediate medical intervention",
			kn: "ತ್ವರಿತ ವೈದ್ಯಕೀಯ ಹಸ್ತಕ್ಷೇಪದ ಅಗತ್ಯವಿರುವ ತೀವ್ರ ತುರ್ತು",
			hi: "तत्काल चिकित्सा हस्तक्षेप की आवश्यकता वाली गंभीर आपातकाल",
		},
		severityHigh: text{
			en: "Rule: All emergency cases are HIGH severity by definition",
			kn: "ನಿಯಮ: ಎಲ್ಲಾ ತುರ್ತು ಪ್ರಕರಣಗಳು ವ್ಯಾಖ್ಯಾನದ ಪ್ರಕಾರ HIGH ಗಂಭೀರತೆ",
			hi: "नियम: सभी आपातकालीन मामले परिभाषा के अनुसार HIGH गंभीरता हैं",
		},
	},
	schema.GeneralMedicine: {
		causes: text{
			en: "General internal medicine symptoms (fever, diabetes, hypertension)",
			kn: "ಸಾಮಾನ್ಯ ಆಂತರಿಕ ವೈದ್ಯಕೀಯ ಲಕ್ಷಣಗಳು (ಜ್ವರ, ಮಧುಮೇಹ, ರಕ್ತದೊತ್ತಡ)",
			hi: "सामान्य आंतरिक चिकित्सा लक्षण (बुखार, मधुमेह, उच्च रक्तचाप)",
		},
		severityHigh: text{
			en: "Rule: Very high fever (>103F) or diabetic emergencies require HIGH severity",
			kn: "ನಿಯಮ: ಬಹಳ ಜ್ವರ (>103F) ಅಥವಾ ಮಧುಮೇಹ ತುರ್ತುಗಳು HIGH ಗಂಭೀರತೆ ಅಗತ್ಯ",
			hi: "नियम: बहुत अधिक बुखार (>103F) या मधुमेह आपातकाल HIGH गंभीरता मांगते हैं",
		},
	},
}

var referTemplate = template{
	causes: text{
		en: "Specialized care not available in current hospital",
		kn: "ಸ್ಥಿತಿಗಾಗಿ ಪ್ರಸ್ತುತ ಆಸ್ಪತ್ರೆಯಲ್ಲಿ ಲಭ್ಯವಿಲ್ಲದ ವಿಶೇಷ ವಿಭಾಗದ ಅಗತ್ಯವಿದೆ",
		hi: "इस स्थिति के लिए वर्तमान अस्पताल में उपलब्ध नहीं विशेष विभाग की आवश्यकता",
	},
	severityHigh: text{
		en: "Cannot assess severity - specialist unavailable",
		kn: "ಗಂಭೀರತೆಯನ್ನು ಮೌಲ್ಯಮಾಪನ ಮಾಡಲು ಸಾಧ್ಯವಿಲ್ಲ - ತಜ್ಞ ಲಭ್ಯವಿಲ್ಲ",
		hi: "गंभीरता का मूल्यांकन नहीं कर सकते - विशेषज्ञ उपलब्ध नहीं",
	},
}

var mediumClause = text{
	en: " Moderate symptoms affecting daily activities require observation.",
	kn: " ದಿನನಿತ್ಯದ ಚಟುವಟಿಕೆಗಳನ್ನು ಪ್ರಭಾವಿಸುವ ಮಧ್ಯಮ ಲಕ್ಷಣಗಳಿಗೆ ನಿಗಾ ಅಗತ್ಯ.",
	hi: " दैनिक गतिविधियों को प्रभावित करने वाले मध्यम लक्षणों के लिए निगरानी आवश्यक।",
}

// Keyword list prefixes; the list is followed by a language-specific full stop.
var indicators = text{
	en: " Detected indicators: ",
	kn: " ಪತ್ತೆಯಾದ ಸೂಚಕಗಳು: ",
	hi: " पहचाने गए संकेत: ",
}
