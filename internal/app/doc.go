// Package app wires the attendance report pipeline into a runnable
// application.
//
// The container owns configuration, the shared logger, and the pipeline
// components (loader, summarizer, exporters). cmd/report stays a thin
// flag-parsing shell around Application.Run, so the whole pipeline can be
// driven and tested without a process boundary.
package app
