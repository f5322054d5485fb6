// Package llf describes LLF GeoJSON forecast files and validates decoded
// documents against that description.
//
// A file holds a header and an ordered list of timesteps. Each timestep holds
// a FeatureCollection whose features carry polygon geometry and properties.
// Properties are checked in two phases: the fixed fields first, then the
// parameterGroup value selects the schema that applies to parameters.
//
// Validated documents are returned as containers: File and Forecast allow
// both keyed access (Value, Get) and indexed access (At, Len) along their
// timesteps and features respectively.
package llf
