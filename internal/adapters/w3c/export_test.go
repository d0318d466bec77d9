package w3c

// Encoders exported for testing.
var (
	Boundary         = boundary
	EncodeMarkupForm = encodeMarkupForm
	EncodeCSSForm    = encodeCSSForm
)
