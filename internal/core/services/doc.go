// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (alignment sources, parsers and caches).
package services
