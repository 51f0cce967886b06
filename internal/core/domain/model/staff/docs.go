// Package staff provides the Staff entity: a washer or ironer bound to one
// branch, with an availability limit on concurrently held orders and the
// currentOrders workload the workflow engine maintains.
package staff
