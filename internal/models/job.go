package models

// NotAvailable fills any field that could not be resolved from a listing.
const NotAvailable = "N/A"

// CSV column names, in file order.
const (
	ColTitle       = "Job Title"
	ColCompany     = "Company"
	ColExperience  = "Experience"
	ColLevel       = "Level"
	ColSalary      = "Salary"
	ColApplyBefore = "Apply Before"
)

// Header is the fixed header row of the jobs file.
var Header = []string{ColTitle, ColCompany, ColExperience, ColLevel, ColSalary, ColApplyBefore}

// JobRecord is one listing as scraped from the jobs page.
type JobRecord struct {
	Title       string `json:"job_title"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	Level       string `json:"level"`
	Salary      string `json:"salary"`
	ApplyBefore string `json:"apply_before"`
}

// Key identifies a listing across runs.
type Key struct {
	Title   string
	Company string
}

func (j JobRecord) Key() Key {
	return Key{Title: j.Title, Company: j.Company}
}

// Row returns the record's values in Header order.
func (j JobRecord) Row() []string {
	return []string{j.Title, j.Company, j.Experience, j.Level, j.Salary, j.ApplyBefore}
}

// FromRow builds a record from a row using a column-name -> index map.
// Columns missing from the map, or beyond the end of a short row, read as NotAvailable.
func FromRow(row []string, index map[string]int) JobRecord {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return NotAvailable
		}
		return row[i]
	}
	return JobRecord{
		Title:       get(ColTitle),
		Company:     get(ColCompany),
		Experience:  get(ColExperience),
		Level:       get(ColLevel),
		Salary:      get(ColSalary),
		ApplyBefore: get(ColApplyBefore),
	}
}
