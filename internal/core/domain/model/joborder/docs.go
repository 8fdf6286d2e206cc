// Package joborder contains the JobOrder aggregate: a requested shipment task
// from a customer. A job order carries a service type (full truckload or
// less-than-truckload), goods metrics, an order value, and a transport
// assignment history. Its lifecycle runs Created through Completed with
// cancellation possible from any non-terminal state.
//
// A job order may be consumed by at most one delivery order as a JO-type
// source; that uniqueness is enforced by the delivery order factory through
// the source claim table, not by this package.
package joborder
