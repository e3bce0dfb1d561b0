//go:generate go tool stringer -type=State

package checkout

type State int

const (
	IDLE State = iota
	VALIDATING
	SUBMITTING
	AWAITING_PAYMENT
	VERIFYING
	COMPLETED
)
