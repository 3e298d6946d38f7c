// Package driver contains the Driver aggregate: a courier bound to a single
// sector whose availability and blocked flags gate its right to claim orders.
package driver
