// Package layout computes where a file belongs in the date hierarchy.
//
// Anchor picks the directory the hierarchy hangs off (the base directory, or
// the legacy first-path-component rule) and Destination appends year, month,
// and optionally day as unpadded decimal segments. Both functions are pure:
// the working directory used by the legacy rule is passed in explicitly.
package layout
