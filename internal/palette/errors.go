package palette

import "errors"

// ErrUnknownPalette is returned by ByName for names it does not know.
var ErrUnknownPalette = errors.New("unknown palette")
