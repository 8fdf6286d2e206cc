// Package services contains domain services implementing business logic
// that spans multiple aggregates.
//
// GroupingValidator enforces the truckload compatibility rules for manifest
// composition; TransportResolver derives the driver and vehicle pair a
// delivery order inherits from its source. Both are stateless and safe for
// concurrent use.
package services
