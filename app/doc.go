// Package app wraps Uber Fx for programs that serve documents.
//
// NewApp installs the slog logger as the process default, routes Fx
// events through it and supplies logging.LoggerConfig and *slog.Logger to
// modules. Documents are served with WithDocument and WithDocumentService.
package app
