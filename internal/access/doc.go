// Package access generates visitor access codes and QR image links.
//
// QR rendering is delegated to an external image service reached by
// URL; this package only builds the deterministic, URL-encoded link.
package access
