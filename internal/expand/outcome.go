package expand

// Reason explains what happened to a key press.
type Reason int

const (
	// ReasonIgnored means the key was not a boundary or did not request
	// resolution.
	ReasonIgnored Reason = iota

	// ReasonExpanded means a shortcut was replaced by its expansion.
	ReasonExpanded

	// ReasonNoSurface means no editing surface was focused.
	ReasonNoSurface

	// ReasonNoToken means no word touched the cursor.
	ReasonNoToken

	// ReasonNoMatch means the word is not a shortcut.
	ReasonNoMatch

	// ReasonNegativeColumn means the word starts at column 0, leaving no
	// room for the start boundary character in front of it.
	ReasonNegativeColumn

	// ReasonEditRejected means the surface refused the replacement.
	ReasonEditRejected
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonIgnored:
		return "ignored"
	case ReasonExpanded:
		return "expanded"
	case ReasonNoSurface:
		return "no surface"
	case ReasonNoToken:
		return "no token"
	case ReasonNoMatch:
		return "no match"
	case ReasonNegativeColumn:
		return "negative column"
	case ReasonEditRejected:
		return "edit rejected"
	default:
		return "unknown"
	}
}

// Outcome describes the effect of one key press.
type Outcome struct {
	// Reason is the result of the key press.
	Reason Reason

	// State is the trigger state after the key press.
	State State

	// Token is the extracted word, when one was found.
	Token Span

	// Replaced is the range that was replaced, start character included.
	// Its Text is left empty.
	Replaced Span

	// Expansion is the text that replaced the shortcut.
	Expansion string

	// Count is the replacement count after the key press.
	Count int

	// Err is the error returned by the surface when Reason is
	// ReasonEditRejected.
	Err error
}

// Expanded reports whether a substitution happened.
func (o Outcome) Expanded() bool {
	return o.Reason == ReasonExpanded
}

// Resolved reports whether the key press attempted a resolution.
func (o Outcome) Resolved() bool {
	return o.Reason != ReasonIgnored
}
