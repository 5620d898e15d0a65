package attendance

// Status is the resolved attendance value for one (employee, date) cell.
type Status string

const (
	StatusPresent   Status = "P"
	StatusAbsent    Status = "A"
	StatusLeave     Status = "L"
	StatusSickLeave Status = "SL"
	StatusLossOfPay Status = "LOP"
	StatusHoliday   Status = "H"
)

var statusLabels = map[Status]string{
	StatusPresent:   "Present",
	StatusAbsent:    "Absent",
	StatusLeave:     "Leave",
	StatusSickLeave: "Sick Leave",
	StatusLossOfPay: "Loss of Pay",
	StatusHoliday:   "Holiday",
}

// ParseStatus converts a wire value into a Status. Unknown values are
// rejected so a bad override can never be stored.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := statusLabels[s]; !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Label returns the human-readable name of the status.
func (s Status) Label() string {
	return statusLabels[s]
}

// Cyclable reports whether the status participates in the manual override
// cycle. Holiday and Leave are produced elsewhere and cannot be set by hand.
func (s Status) Cyclable() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLossOfPay, StatusSickLeave:
		return true
	}
	return false
}

// Cycle advances the status one step in the fixed override order
// P -> A -> LOP -> SL -> P. Non-cyclable statuses return themselves.
func (s Status) Cycle() Status {
	switch s {
	case StatusPresent:
		return StatusAbsent
	case StatusAbsent:
		return StatusLossOfPay
	case StatusLossOfPay:
		return StatusSickLeave
	case StatusSickLeave:
		return StatusPresent
	}
	return s
}
