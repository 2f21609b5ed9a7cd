// Package report renders scan results as aligned tables for terminal output.
package report
