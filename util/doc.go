// Package util provides small helpers shared across the automation
// platform: human-readable size parsing and string sanitization.
package util
