package strsearch

import "errors"

// Errors returned by the AnyLiteral constructors. Searching itself never
// returns an error: a pattern that matches nothing is a normal outcome.
var (
	// ErrNoAlternatives indicates AnyLiteral was given no literals.
	ErrNoAlternatives = errors.New("no literal alternatives")

	// ErrEmptyAlternative indicates one of the literals is empty. The
	// empty needle is only defined for the single Literal pattern.
	ErrEmptyAlternative = errors.New("empty literal alternative")

	// ErrInvalidUTF8 indicates one of the literals is not valid UTF-8, so
	// its match offsets could land inside a character of the haystack.
	ErrInvalidUTF8 = errors.New("literal alternative is not valid UTF-8")
)
