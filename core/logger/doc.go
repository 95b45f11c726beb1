// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON objects so they can be
// aggregated after the fact with a Report.
package logger
