// Package fileutil provides the depth-bounded directory traversal behind the
// treewalk listing.
//
// # Purpose
//
// The fileutil package is responsible for:
//   - Walking a directory tree up to a maximum depth
//   - Classifying every node it meets (see package models)
//   - Hiding dotfiles and platform-hidden entries
//   - Applying name, extension and size filters to files
//   - Turning filesystem failures into ErrorEntry values
//
// # Main Components
//
// Filter - predicate over entries, combined with And:
//   - NameContains: case-sensitive substring of the base name
//   - ExtensionEquals: exact extension match, files without one never pass
//   - SizeBetween: inclusive byte range, files of unknown size never pass
//
// FilterOptions - command-line filter configuration, Build() returns the
// combined Filter.
//
// Visitor - depth-first walker. Walk(root) returns entries in pre-order with
// each DepthLevel equal to the distance from root.
//
// EntriesProvider - wraps Visitor so that callers always get a result; a root
// that cannot be read yields exactly one ErrorEntry.
//
// # Depth Rules
//
// The root is depth 0 and its children are depth 1. With maxDepth 0 the root
// is not listed but its immediate children are. With maxDepth N > 0 the root
// is listed and no entry deeper than N is produced. Subtrees are skipped
// before they are read, so directories beyond the limit are never opened.
//
// # Filtering Rules
//
// Directories only go through the visibility check, which keeps the shape of
// the tree visible even when every file inside is filtered out. Error entries
// are always emitted. Hidden directories are pruned together with their
// contents.
//
// # Usage Examples
//
//	opts := fileutil.FilterOptions{Name: "report", Extension: "csv"}
//	provider := fileutil.NewEntriesProvider(opts.Build(), log)
//	for _, entry := range provider.Entries("/srv/data", 2) {
//	    fmt.Println(entry.BaseName())
//	}
package fileutil
