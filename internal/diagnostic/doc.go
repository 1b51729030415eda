// Package diagnostic provides structured warnings, errors and infos
// collected while converting an inventory template.
//
// Key capabilities:
//   - Dangling child rows whose parent never appeared
//   - Duplicate parent registrations that were ignored
//   - Rows skipped for lack of an identity key
//   - Unmapped headers with the closest known synonym
//   - Dialect validation errors
package diagnostic
