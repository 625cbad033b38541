package models

// BusinessTravel enumerates the travel frequency codes of the HR dataset.
type BusinessTravel string

const (
	TravelNone       BusinessTravel = "Non-Travel"
	TravelRarely     BusinessTravel = "Travel_Rarely"
	TravelFrequently BusinessTravel = "Travel_Frequently"
)

// Employee is one row of the HR attrition dataset. Only the columns the
// analyses consume are modeled; the loader skips everything else.
type Employee struct {
	EmployeeNumber   int
	Age              int
	Attrition        bool
	BusinessTravel   BusinessTravel
	Department       string
	DistanceFromHome int
	Education        int
	EducationField   string
	Gender           string
	JobRole          string
	MonthlyIncome    float64
}
