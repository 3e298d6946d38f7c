// Package provider contains the Provider aggregate: a merchant bound to a
// single sector whose availability and blocked flags gate its right to claim
// orders.
package provider
