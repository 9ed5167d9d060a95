package affect

import "errors"

var (
	// ErrUnknownLexicon is returned when a lexicon source is neither a
	// built-in designator nor a filesystem path.
	ErrUnknownLexicon = errors.New("expected path or built-in lexicon")

	// ErrLexiconFormat is returned when a lexicon cannot be read or
	// does not have the word -> [labels] shape.
	ErrLexiconFormat = errors.New("invalid lexicon")

	// ErrNilLexicon is returned when an analyzer is built without a lexicon.
	ErrNilLexicon = errors.New("lexicon is nil")
)
