// Package environment names the stage qrdecode runs in: development, staging
// or production.
//
// Parse accepts both full names and the short aliases used in shell
// environments:
//
//	env := environment.Parse(os.Getenv("QRDECODE_ENV")) // "prod" -> Production
//
// The logger package uses these names to pick format and level presets.
package environment
