// Package inspect reads repository metadata for discovered repository paths.
//
// RepositoryInspector produces RepositoryRecord values by querying git through
// a repository manager. Field-level read failures degrade into warnings so a
// single corrupt repository never aborts a scan.
package inspect
