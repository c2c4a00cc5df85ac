package model

// Allowed values for the enumerated columns. The same sets back the CHECK
// constraints declared on the models and the oneof rules on the forms.
const (
	GenderMale   = "male"
	GenderFemale = "female"

	ReadinessNotLooking = "not_looking"
	ReadinessLooking    = "looking"
	ReadinessConsider   = "consider"

	SpecializationDevelopment = "development"
	SpecializationTesting     = "testing"
	SpecializationAnalytics   = "analytics"
	SpecializationDesign      = "design"
	SpecializationManagement  = "management"
	SpecializationSecurity    = "security"
	SpecializationAI          = "ai"

	GradeNone   = "no"
	GradeIntern = "intern"
	GradeJunior = "junior"
	GradeMiddle = "middle"
	GradeSenior = "senior"
	GradeLead   = "lead"
)

// Choice is a selectable value with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	GenderChoices = []Choice{
		{GenderMale, "male"},
		{GenderFemale, "female"},
	}

	ReadinessChoices = []Choice{
		{ReadinessNotLooking, "not looking for a job"},
		{ReadinessLooking, "looking for a job"},
		{ReadinessConsider, "open to offers"},
	}

	SpecializationChoices = []Choice{
		{SpecializationDevelopment, "Development"},
		{SpecializationTesting, "Testing"},
		{SpecializationAnalytics, "Analytics"},
		{SpecializationDesign, "Design"},
		{SpecializationManagement, "Management"},
		{SpecializationSecurity, "Information security"},
		{SpecializationAI, "Artificial intelligence"},
	}

	GradeChoices = []Choice{
		{GradeNone, "not specified"},
		{GradeIntern, "intern"},
		{GradeJunior, "junior"},
		{GradeMiddle, "middle"},
		{GradeSenior, "senior"},
		{GradeLead, "lead"},
	}
)

// Label returns the display label for value, or value itself when unknown.
func Label(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
