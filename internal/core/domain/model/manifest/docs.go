// Package manifest contains the Manifest aggregate: a grouping of one or more
// compatible job orders bound to a single driver/vehicle trip. Grouping is
// governed by service-type exclusivity: a full-truckload job order fills a
// manifest exclusively, less-than-truckload job orders combine freely with
// each other. Transport is bound once and never rebound; delivery orders
// derived from a manifest inherit its transport verbatim.
package manifest
