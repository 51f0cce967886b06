// Package logistics contains the logistics partner record, its pincode
// coverage and the Leg enumeration (pickup, delivery).
package logistics
