package model

// Entry represents one recorded work shift. Date is the partition key
// for all day and month grouping; at most one entry exists per date.
type Entry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`  // YYYY-MM-DD
	Start    string  `json:"start"` // HH:MM, 24-hour
	End      string  `json:"end"`   // HH:MM, 24-hour
	Location string  `json:"location"`
	Hours    float64 `json:"hours"` // computed once at creation, never recomputed on read
}

// Draft holds the user-supplied fields of an entry before it is
// validated, assigned an ID and given its computed hours.
type Draft struct {
	Date     string
	Start    string
	End      string
	Location string
}
