// Package race provides the Race aggregate: a named transport batch that
// carries warehoused packages to a destination.
//
// A race accepts a package only while the package is InWarehouse. Name
// uniqueness and the start/arrival schedule are checked by the application
// layer when a race is created.
package race
