// Command treectl is an operational CLI around the aabbtree library: it
// builds trees from files of insert/remove/update operations, runs queries and mutations
// against them, runs a randomized insert/remove stress workload, checks
// every invariant via Tree.Validate, and serves live tree diagnostics as
// Prometheus metrics.
package main

func main() {
	Execute()
}
