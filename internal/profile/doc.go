// Package profile loads formatting defaults from an HCL file. Attribute
// expressions may reference the process environment through the `env`
// variable and call a small set of cty standard library functions.
package profile
