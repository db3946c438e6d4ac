package report

import (
	"strconv"

	"github.com/spektr-org/workforce/engine"
	"github.com/spektr-org/workforce/roster"
)

// ============================================================================
// CATALOG — The fixed set of roster queries, in execution order
// ============================================================================
// Each query is a pure function of the roster. None of them sorts or
// filters in place, so the order they run in never changes their output.
// ============================================================================

// Query is one entry of the catalog.
type Query struct {
	ID    int
	Title string
	Run   func([]roster.Employee) Result
}

// Catalog returns every query in execution order. IDs are stable.
func Catalog() []Query {
	return []Query{
		{1, "Group the employees by city", countByCity},
		{2, "Group the employees by age", countByAge},
		{3, "Count of male and female employees", countByGender},
		{4, "Names of all departments", departmentNames},
		{5, "Employees older than 28", olderThan28},
		{6, "Maximum age of an employee", maxAge},
		{7, "Average age of male and female employees", averageAgeByGender},
		{8, "Number of employees in each department", countByDepartment},
		{9, "Oldest employee", oldestEmployee},
		{10, "Youngest female employee", youngestFemale},
		{11, "Employees partitioned by age greater than 28", partitionByAge},
		{12, "Department with the highest number of employees", largestDepartmentWithCount},
		{13, "Any employee from the HR department", anyHREmployee},
		{14, "Departments with more than one employee", departmentsOverOne},
		{15, "Distinct department names", departmentNames},
		{16, "Names of employees living in Bangalore, sorted by name", bangaloreNames},
		{17, "Number of employees in the organisation", headcount},
		{18, "Employee count in every department", countByDepartment},
		{19, "Department with the most employees", largestDepartment},
		{20, "Employees sorted by age and name", sortedByAgeAndName},
		{21, "Most experienced employee", mostExperienced},
		{22, "Average and total salary of the organisation", salaryTotals},
		{23, "Average salary of each department", averageSalaryByDepartment},
		{24, "Highest salary in the organisation", highestSalary},
		{25, "Employee with the second-highest salary", nthHighestSalary(2)},
		{26, "Employee with the third-highest salary", nthHighestSalary(3)},
		{27, "Highest salary by gender", highestSalaryByGender},
		{28, "Lowest salary in the organisation", lowestSalary},
		{29, "Salaries in ascending order", salariesAscending},
		{30, "Salaries in descending order", salariesDescending},
		{31, "Highest salary in each department", highestSalaryByDepartment},
		{32, "Second-highest salary in each department", secondHighestSalaryByDepartment},
		{33, "Employees of each department by salary, ascending", departmentSalariesAscending},
		{34, "Employees of each department by salary, descending", departmentSalariesDescending},
	}
}

const ageThreshold = 28

func olderThanThreshold(e roster.Employee) bool { return e.Age > ageThreshold }

// ============================================================================
// GROUP AND COUNT
// ============================================================================

func countByCity(es []roster.Employee) Result {
	return entries(countLines(engine.CountBy(es, roster.City)))
}

func countByAge(es []roster.Employee) Result {
	return entries(countLines(engine.CountBy(es, roster.Age)))
}

func countByGender(es []roster.Employee) Result {
	return entries(countLines(engine.CountBy(es, roster.Gender)))
}

func countByDepartment(es []roster.Employee) Result {
	return entries(countLines(engine.CountBy(es, roster.Department)))
}

func departmentsOverOne(es []roster.Employee) Result {
	return entries(countLines(engine.HavingCount(engine.CountBy(es, roster.Department), 1)))
}

func largestDepartmentWithCount(es []roster.Employee) Result {
	top, ok := engine.MaxEntry(engine.CountBy(es, roster.Department))
	if !ok {
		return absent()
	}
	return entries(countLines([]engine.Entry[string, int]{top}))
}

func largestDepartment(es []roster.Employee) Result {
	top, ok := engine.MaxEntry(engine.CountBy(es, roster.Department))
	if !ok {
		return absent()
	}
	return scalar(top.Key)
}

func headcount(es []roster.Employee) Result {
	return scalar(strconv.Itoa(len(es)))
}

// ============================================================================
// GROUP AND AGGREGATE
// ============================================================================

func averageAgeByGender(es []roster.Employee) Result {
	return entries(amountLines(engine.AggregateBy(es, roster.Gender, roster.AgeMeasure, engine.AggAvg)))
}

func averageSalaryByDepartment(es []roster.Employee) Result {
	return entries(amountLines(engine.AggregateBy(es, roster.Department, roster.Salary, engine.AggAvg)))
}

func highestSalaryByGender(es []roster.Employee) Result {
	return entries(amountLines(engine.AggregateBy(es, roster.Gender, roster.Salary, engine.AggMax)))
}

func highestSalaryByDepartment(es []roster.Employee) Result {
	return entries(amountLines(engine.AggregateBy(es, roster.Department, roster.Salary, engine.AggMax)))
}

func secondHighestSalaryByDepartment(es []roster.Employee) Result {
	runnersUp := engine.MapGroups(engine.GroupBy(es, roster.Department), func(members []roster.Employee) Line {
		e, ok := engine.NthHighest(members, roster.Salary, 2)
		if !ok {
			return Line{Absent: true}
		}
		return Line{Value: formatAmount(e.Salary)}
	})

	lines := make([]Line, 0, len(runnersUp))
	for _, r := range runnersUp {
		line := r.Value
		line.Key = r.Key
		lines = append(lines, line)
	}
	return entries(lines)
}

func departmentSalariesAscending(es []roster.Employee) Result {
	return groups(recordGroups(engine.MapGroups(engine.GroupBy(es, roster.Department), func(members []roster.Employee) []roster.Employee {
		return engine.SortStable(members, engine.Ascending(roster.Salary))
	})))
}

func departmentSalariesDescending(es []roster.Employee) Result {
	return groups(recordGroups(engine.MapGroups(engine.GroupBy(es, roster.Department), func(members []roster.Employee) []roster.Employee {
		return engine.SortStable(members, engine.Descending(roster.Salary))
	})))
}

// ============================================================================
// FILTER, PARTITION AND DISTINCT
// ============================================================================

func departmentNames(es []roster.Employee) Result {
	return values(engine.Distinct(es, roster.Department))
}

func olderThan28(es []roster.Employee) Result {
	return records(engine.Filter(es, olderThanThreshold))
}

func partitionByAge(es []roster.Employee) Result {
	matched, rest := engine.Partition(es, olderThanThreshold)
	return groups([]RecordGroup{
		{Key: "true", Records: matched},
		{Key: "false", Records: rest},
	})
}

func anyHREmployee(es []roster.Employee) Result {
	return record(engine.First(es, engine.FoldMatch(roster.Department, "HR")))
}

func bangaloreNames(es []roster.Employee) Result {
	residents := engine.Filter(es, engine.FoldMatch(roster.City, "Bangalore"))
	sorted := engine.SortStable(residents, engine.Ascending(roster.Name))
	return values(engine.Project(sorted, roster.Name))
}

// ============================================================================
// EXTREMES AND RANKS
// ============================================================================

func maxAge(es []roster.Employee) Result {
	e, ok := engine.MaxBy(es, roster.AgeMeasure)
	if !ok {
		return absent()
	}
	return scalar(strconv.Itoa(e.Age))
}

func oldestEmployee(es []roster.Employee) Result {
	return record(engine.MaxBy(es, roster.AgeMeasure))
}

func youngestFemale(es []roster.Employee) Result {
	women := engine.Filter(es, engine.FoldMatch(roster.Gender, "F"))
	return record(engine.MinBy(women, roster.AgeMeasure))
}

func mostExperienced(es []roster.Employee) Result {
	return record(engine.MinBy(es, roster.JoiningMeasure))
}

func highestSalary(es []roster.Employee) Result {
	return amount(engine.Max(es, roster.Salary))
}

func lowestSalary(es []roster.Employee) Result {
	return amount(engine.Min(es, roster.Salary))
}

func nthHighestSalary(n int) func([]roster.Employee) Result {
	return func(es []roster.Employee) Result {
		return record(engine.NthHighest(es, roster.Salary, n))
	}
}

func salaryTotals(es []roster.Employee) Result {
	var lines []Line
	if avg, ok := engine.Average(es, roster.Salary); ok {
		lines = append(lines, Line{Key: "average", Value: formatAmount(avg)})
	} else {
		lines = append(lines, Line{Key: "average", Absent: true})
	}
	lines = append(lines, Line{Key: "total", Value: formatAmount(engine.Sum(es, roster.Salary))})
	return entries(lines)
}

// ============================================================================
// SORTED PROJECTIONS
// ============================================================================

func sortedByAgeAndName(es []roster.Employee) Result {
	return records(engine.SortStable(es, engine.Ascending(roster.Age), engine.Ascending(roster.Name)))
}

func salariesAscending(es []roster.Employee) Result {
	return values(formatAmounts(engine.Values(engine.SortStable(es, engine.Ascending(roster.Salary)), roster.Salary)))
}

func salariesDescending(es []roster.Employee) Result {
	return values(formatAmounts(engine.Values(engine.SortStable(es, engine.Descending(roster.Salary)), roster.Salary)))
}

func formatAmounts(vs []float64) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = formatAmount(v)
	}
	return out
}
