// Package explain renders the trilingual rationale attached to every triage record.
package explain

import (
	"strings"

	"github.com/zen-systems/medtriage/pkg/schema"
)

// MaxKeywords bounds the keywords quoted in an explanation.
const MaxKeywords = 5

// Build renders the explanation for a department name (or "REFER"), a severity and
// the detected keywords. Unknown categories use the General Medicine wording.
func Build(category string, severity schema.Severity, keywords []string) schema.Explanation {
	tmpl := lookup(category)

	var en, kn, hi strings.Builder
	en.WriteString(tmpl.causes.en)
	kn.WriteString(tmpl.causes.kn)
	hi.WriteString(tmpl.causes.hi)

	switch severity {
	case schema.SeverityHigh:
		en.WriteString(". " + tmpl.severityHigh.en)
		kn.WriteString(". " + tmpl.severityHigh.kn)
		hi.WriteString(". " + tmpl.severityHigh.hi)
	case schema.SeverityMedium:
		en.WriteString(mediumClause.en)
		kn.WriteString(mediumClause.kn)
		hi.WriteString(mediumClause.hi)
	}

	if len(keywords) > 0 {
		if len(keywords) > MaxKeywords {
			keywords = keywords[:MaxKeywords]
		}
		list := strings.Join(keywords, ", ")
		en.WriteString(indicators.en + list + ".")
		kn.WriteString(indicators.kn + list + ".")
		hi.WriteString(indicators.hi + list + "।")
	}

	return schema.Explanation{EN: en.String(), KN: kn.String(), HI: hi.String()}
}

func lookup(category string) template {
	if category == schema.CategoryRefer {
		return referTemplate
	}
	if dept, ok := schema.ParseDepartment(category); ok {
		if tmpl, ok := templates[dept]; ok {
			return tmpl
		}
	}
	return templates[schema.GeneralMedicine]
}
