// Package deliveryorder contains the DeliveryOrder aggregate: the executable
// dispatch document derived either from a standalone job order or from one
// specific job order within a manifest. A manifest-sourced delivery order
// inherits the manifest's driver/vehicle and locks them; a job-order-sourced
// one requires transport to be supplied and keeps it editable until dispatch.
//
// Source consumption is exclusive: a job order feeds at most one delivery
// order, and each (manifest, job order) pair yields at most one. That claim
// is enforced transactionally by the factory through the source claim table.
package deliveryorder
