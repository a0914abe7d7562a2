// Package services implements the driving port interfaces.
// Services contain the core business logic - window segmentation,
// residue renumbering, batch orchestration - and call out to driven
// ports (adapters) for parsing, downloading and persistence.
package services
