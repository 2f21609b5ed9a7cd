// Package discovery locates git repository roots beneath configured scan
// roots. It exposes FilesystemRepositoryDiscoverer, the traversal component
// consumed by the scan service.
package discovery
