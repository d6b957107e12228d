// Package fitness computes the global scalar objective a search strategy
// optimizes against, plus a breakdown of its contributing terms for UI
// and test introspection.
package fitness
