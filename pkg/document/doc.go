// Package document loads declarative form documents and renders them to
// HTML. Documents are YAML (JSON is accepted as the same shape):
//
//	form:
//	  id: signup
//	  action: /signup
//	  method: post
//	  legend: Create account
//	fields:
//	  - name: email
//	    widget: email
//	    label: Email
//	    attributes: {required: true}
//	submit: {id: go, label: Sign up}
//	errors: {email: [already registered]}
//
// Render walks the fields in order and delegates each one to a
// widgets.Registry; WithStrict swaps in the accessibility-checked builders
// and WithTheme applies a go-theme renderer configuration.
package document
