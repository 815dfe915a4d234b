// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): the session lifecycle, context
// retrieval, and study-aid generation with tolerant output parsing.
package services
