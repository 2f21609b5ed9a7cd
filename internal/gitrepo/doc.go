// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for reading branches, remotes, worktree status,
// and commit timestamps, along with remote URL parsing consumed by the scan
// and lifecycle services.
package gitrepo
