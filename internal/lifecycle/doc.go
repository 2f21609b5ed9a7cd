// Package lifecycle implements the clone and upload repository operations.
//
// Both operations inspect their local path before delegating: clone refuses a
// destination that already holds a repository, and upload refuses a path that
// does not. Delegation goes to git for clones and to the GitHub CLI for
// uploads.
package lifecycle
