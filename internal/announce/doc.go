// Package announce drafts community announcements with a generative model.
//
// The collaborator contract is deliberately lossless for the caller:
// Generate always resolves to a displayable string. Service errors,
// empty responses, and a missing API key all map to fixed user-visible
// Spanish notices rather than Go errors.
package announce
