// Package catalog parses the opaque, host-supplied mutation catalog into
// normalized ParsedMutation records, caches them by id, and implements
// the dynamic "godseed" pseudo-mutation whose conditions are computed
// from whatever mutations are already available rather than fixed data.
//
// Parse never mutates the caller's raw catalog map — a fresh
// ParsedMutation is always returned, even for the godseed override (see
// DESIGN.md, resolved open question 2).
package catalog
