package marking

import "errors"

// Sequencing errors: at most one entrada and one saida per employee per
// local calendar day, entrada always first.
var (
	ErrEntradaAlreadyMarked = errors.New("entrada already marked today")
	ErrEntradaNotMarked     = errors.New("entrada not marked yet today")
	ErrSaidaAlreadyMarked   = errors.New("saida already marked today")
)
