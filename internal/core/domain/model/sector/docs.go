// Package sector contains the Sector aggregate: a geographic delivery zone
// with a polygon boundary, a flat delivery fee, and an activation flag that
// controls whether the zone participates in address resolution.
package sector
