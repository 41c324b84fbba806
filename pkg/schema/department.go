package schema

// Department is one of the fixed clinical routing categories.
// The declaration order is the table-construction order used for tie-breaks.
type Department int

const (
	Cardiology Department = iota
	Orthopedics
	Neurology
	Gastroenterology
	Gynecology
	Pediatrics
	ENT
	Dermatology
	EmergencyMedicine
	GeneralMedicine
)

var departmentNames = [...]string{
	Cardiology:        "Cardiology",
	Orthopedics:       "Orthopedics",
	Neurology:         "Neurology",
	Gastroenterology:  "Gastroenterology",
	Gynecology:        "Gynecology",
	Pediatrics:        "Pediatrics",
	ENT:               "ENT",
	Dermatology:       "Dermatology",
	EmergencyMedicine: "Emergency Medicine",
	GeneralMedicine:   "General Medicine",
}

// Departments lists every department in table-construction order.
func Departments() []Department {
	out := make([]Department, len(departmentNames))
	for i := range departmentNames {
		out[i] = Department(i)
	}
	return out
}

// Valid reports whether d belongs to the fixed department set.
func (d Department) Valid() bool {
	return d >= 0 && int(d) < len(departmentNames)
}

func (d Department) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return departmentNames[d]
}

// Ptr returns a pointer to a copy of d.
func (d Department) Ptr() *Department {
	return &d
}

// ParseDepartment resolves a canonical department name.
func ParseDepartment(name string) (Department, bool) {
	for i, n := range departmentNames {
		if n == name {
			return Department(i), true
		}
	}
	return 0, false
}
