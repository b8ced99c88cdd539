// Package a11y wraps the permissive builders with accessibility checks taken
// from WCAG 2.1 level A. Each wrapper validates its required inputs first and
// returns a *ValidationError naming the element and the missing attribute
// instead of rendering degraded markup. Blank values count as missing; "0"
// does not.
package a11y
