// Package domain contains the dimension and unit algebra: immutable
// Dimension, Prefix and Unit values, their multiplicative operations,
// canonicalization to base form (Rebase), identifier rendering and
// configurable simplification, together with the catalog of named
// dimensions and units and the exact Magnitude used by quantities.
//
// All values are immutable and safe to share between goroutines.
package domain
