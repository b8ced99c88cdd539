// Package sanitize provides element.Formatter implementations backed by
// bluemonday policies. They replace plain escaping when content may carry
// markup from untrusted sources that should survive in a reduced form.
package sanitize
