package game

type Status uint8

const (
	// StatusUnknown is when the session has not been evaluated.
	StatusUnknown Status = iota

	// StatusRunning is when the side on move has a legal move and is not in check.
	StatusRunning

	// StatusCheck is when the King of the side on move is attacked.
	StatusCheck

	// StatusCheckmate is when the King of the side on move is attacked and no move saves it.
	StatusCheckmate

	// StatusStalemate is when the side on move cannot move a piece and its King is not in check.
	StatusStalemate

	// StatusPromotion is when a pawn reached the last rank and waits for its new kind.
	StatusPromotion
)

func (s Status) IsRunning() bool {
	switch s {
	case StatusRunning, StatusCheck, StatusPromotion:
		return true
	default:
		return false
	}
}

func (s Status) IsOver() bool {
	switch s {
	case StatusCheckmate, StatusStalemate:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "StatusUnknown"
	case StatusRunning:
		return "StatusRunning"
	case StatusCheck:
		return "StatusCheck"
	case StatusCheckmate:
		return "StatusCheckmate"
	case StatusStalemate:
		return "StatusStalemate"
	case StatusPromotion:
		return "StatusPromotion"
	default:
		return ""
	}
}
