// Package abi provides size arithmetic and limits shared by the host cell
// model and the transcoder.
//
// # Contents
//
//   - helpers.go: overflow-checked arithmetic and alignment
//   - limits.go: host-imposed limits on strings, references and allocations
//
// This package is internal to the module.
package abi
