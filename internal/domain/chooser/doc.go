// Package chooser selects a representative quantity (minimum, maximum,
// median or average) from a collection of quantities that may be
// expressed in different units.
//
// Strategies are stateless. Ordering and unit conversion are delegated to
// a Configuration, typically a registry.Registry, so that errors such as
// a dimension mismatch surface unchanged from the configuration.
package chooser
