// Package lookup adapts keyed stores to tryget results.
//
// Each source answers a key with a tryget.Result that is successful exactly
// when the key was found. The payload can then be narrowed with tryget.As.
package lookup
