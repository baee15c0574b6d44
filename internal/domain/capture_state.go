package domain

import "fmt"

// CaptureState tracks one capture sequence for a single request.
type CaptureState string

const (
	CaptureStateUnvalidated CaptureState = "UNVALIDATED"
	CaptureStateChecked     CaptureState = "CHECKED"
	CaptureStateRejected    CaptureState = "REJECTED"
	CaptureStateCapturing   CaptureState = "CAPTURING"
	CaptureStateCaptured    CaptureState = "CAPTURED"
	CaptureStateFailed      CaptureState = "FAILED"
)

// CanTransitionTo validates a move in the capture sequence.
//
// Valid transitions are:
//   - Unvalidated → Checked
//   - Checked → Rejected, Capturing
//   - Capturing → Captured, Failed
//
// Rejected, Captured and Failed are terminal. Nothing is retried automatically.
func (s CaptureState) CanTransitionTo(target CaptureState) error {
	switch s {
	case CaptureStateUnvalidated:
		if target == CaptureStateChecked {
			return nil
		}
	case CaptureStateChecked:
		if target == CaptureStateRejected || target == CaptureStateCapturing {
			return nil
		}
	case CaptureStateCapturing:
		if target == CaptureStateCaptured || target == CaptureStateFailed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s, target)
}

func (s CaptureState) IsTerminal() bool {
	switch s {
	case CaptureStateRejected, CaptureStateCaptured, CaptureStateFailed:
		return true
	default:
		return false
	}
}
