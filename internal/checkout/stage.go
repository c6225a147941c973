package checkout

// Stage is a step of the checkout flow
type Stage string

const (
	StageShipping     Stage = "shipping"
	StagePayment      Stage = "payment"
	StageConfirmation Stage = "confirmation"
)

var stageLabels = []struct {
	stage Stage
	label string
}{
	{StageShipping, "Shipping"},
	{StagePayment, "Payment"},
	{StageConfirmation, "Confirmation"},
}

// IsTerminal reports whether the flow can leave this stage
func (s Stage) IsTerminal() bool {
	return s == StageConfirmation
}

// Number is the 1-based position of the stage in the progress indicator
func (s Stage) Number() int {
	for i, l := range stageLabels {
		if l.stage == s {
			return i + 1
		}
	}
	return 0
}

// String representation (for logging)
func (s Stage) String() string {
	return string(s)
}
