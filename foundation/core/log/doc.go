// Package log provides structured logging for the textio tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text, console and logfmt
//              formatters, persistent context fields, correlation ids,
//              operation timers and severity-aware reporting of structured
//              errors.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Synchronous writer only, lipgloss console formatter
// - 2026-10-20 v0.3.0: Timers no longer log failures
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatConsole,
//	    Output: os.Stderr,
//	    Name:   "textio",
//	})
//
//	timer := logger.StartTimer("read_lines").WithFields(log.Fields{"path": path})
//	lines, err := filex.ReadLines(path, "#", "cannot open "+path)
//	if err != nil {
//	    timer.Cancel()
//	    logger.LogError(err)
//	    return err
//	}
//	timer.WithFields(log.Fields{"lines": len(lines)}).Stop()
package log
