/*
Package logging provides Logger implementations for CosmosRepository.

The repository logs every caught store failure before returning it, through
a minimal observational interface:

	type Logger interface {
	    Error(err error, msg string)
	}

ZapLogger adapts go.uber.org/zap for production use; Nop discards everything
and is the default when no logger is configured.
*/
package logging
