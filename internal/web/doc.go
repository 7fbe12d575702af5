// Package web serves the community hub's JSON API. Handlers stay thin:
// they validate input, resolve the acting user, delegate to the session
// or a feature store, and translate domain errors into HTTP statuses.
package web
