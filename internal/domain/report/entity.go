package report

// Row is one worker's line in the attendance report. Fields are already
// formatted for display: "N/A" sentinels, capitalized status, currency-prefixed
// amount.
type Row struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ClockIn     string `json:"clock_in"`
	ClockOut    string `json:"clock_out"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// Report is an immutable generated attendance report. A new generation always
// produces a new Report, even for the same date.
type Report struct {
	Date        string `json:"date"`
	GeneratedBy string `json:"generated_by"`
	Present     int    `json:"present"`
	Absent      int    `json:"absent"`
	Rows        []Row  `json:"rows"`
	FileName    string `json:"file_name"`
	StorageURL  string `json:"storage_url"`
}

// ListItem is one line of the report browser, newest date first.
type ListItem struct {
	Date string `json:"date"`
	URL  string `json:"url"`
}
