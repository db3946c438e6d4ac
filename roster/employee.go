package roster

import "fmt"

// ============================================================================
// EMPLOYEE — The one record type of the dataset
// ============================================================================
// Loaded once at startup and never mutated. Queries receive it by value.
// Field names in JSON tags are the external contract of the data file.
// ============================================================================

// Employee is a single roster entry.
type Employee struct {
	EmployeeID    int     `json:"employeeId"`
	Name          string  `json:"name"`
	Salary        float64 `json:"salary"`
	Department    string  `json:"department"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	City          string  `json:"city"`
	YearOfJoining int     `json:"yearOfJoining"`
}

// String renders every field on one line.
func (e Employee) String() string {
	return fmt.Sprintf("Employee{id=%d name=%q salary=%.2f department=%q age=%d gender=%q city=%q joined=%d}",
		e.EmployeeID, e.Name, e.Salary, e.Department, e.Age, e.Gender, e.City, e.YearOfJoining)
}

// Accessors used as group keys and measures by the query catalog.

func Department(e Employee) string { return e.Department }
func City(e Employee) string       { return e.City }
func Gender(e Employee) string     { return e.Gender }
func Name(e Employee) string       { return e.Name }
func Age(e Employee) int           { return e.Age }

func Salary(e Employee) float64         { return e.Salary }
func AgeMeasure(e Employee) float64     { return float64(e.Age) }
func JoiningMeasure(e Employee) float64 { return float64(e.YearOfJoining) }
