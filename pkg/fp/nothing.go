package fp

// Nothing is the functional void. It stands in for results whose value is irrelevant.
type Nothing struct{}

// Unit is the only Nothing there is.
var Unit = Nothing{}

func (Nothing) String() string {
	return "()"
}

// ToNothing discards any value.
func ToNothing[T any](_ T) Nothing {
	return Unit
}

// Do runs action and returns Unit.
func Do(action func()) Nothing {
	action()
	return Unit
}
