package candidate

// Candidate represents one applicant record as supplied by the intake
// document. Records are read-only: nothing in this codebase mutates a
// Candidate after load.
type Candidate struct {
	Name              string            `json:"name"`
	Email             string            `json:"email,omitempty"`
	Location          string            `json:"location"`
	SalaryExpectation map[string]string `json:"annual_salary_expectation"`
	WorkExperiences   []WorkExperience  `json:"work_experiences"`
	Education         Education         `json:"education"`
	Skills            []string          `json:"skills"`
}

// WorkExperience is a single entry in a candidate's work history.
type WorkExperience struct {
	Company  string `json:"company"`
	RoleName string `json:"roleName"`
}

// Education holds the candidate's highest attained level and the
// individual degrees behind it.
type Education struct {
	HighestLevel string   `json:"highest_level"`
	Degrees      []Degree `json:"degrees"`
}

// Degree is a single degree entry. IsTop50 marks degrees from
// top-50-ranked institutions.
type Degree struct {
	Subject string `json:"subject,omitempty"`
	School  string `json:"school,omitempty"`
	IsTop50 bool   `json:"isTop50"`
}

// FullTimeSalary returns the raw full-time salary expectation string,
// or "" when the candidate did not state one.
func (c *Candidate) FullTimeSalary() string {
	if c.SalaryExpectation == nil {
		return ""
	}
	return c.SalaryExpectation["full-time"]
}

// HighestEducation returns the highest education level, or "" when the
// record has none.
func (c *Candidate) HighestEducation() string {
	return c.Education.HighestLevel
}

// EducationOrUnknown returns the highest education level, substituting
// the literal "Unknown" for an absent value. Diversity counting treats
// "Unknown" as a distinct level of its own.
func (c *Candidate) EducationOrUnknown() string {
	if c.Education.HighestLevel == "" {
		return "Unknown"
	}
	return c.Education.HighestLevel
}

// HasTopTierDegree reports whether any listed degree is flagged as
// coming from a top-50 institution.
func (c *Candidate) HasTopTierDegree() bool {
	for _, d := range c.Education.Degrees {
		if d.IsTop50 {
			return true
		}
	}
	return false
}
