package engine

type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidFamilySize is returned for a family size of zero or less. Its
// text is shown to users verbatim.
const ErrInvalidFamilySize = constError("Please enter a valid family size.")
