// Package zip provides containers that own a fixed number of heterogeneous
// sequences and expose them as one logical sequence of tuples. Iteration,
// indexing, insertion, erasure and reordering apply to every owned sequence
// in lockstep, so sorting a Zip3 by its first sequence permutes the other
// two the same way.
//
// Element access yields views: proxy tuples whose slots alias the live
// elements of the owned sequences. Views keep aliasing when copied; a Tuple2
// or Tuple3 is the value-mode counterpart holding independent copies.
// Converting a view to a tuple is an explicit copy (View2.Get); the reverse
// conversion does not exist.
//
// Ordering of tuples and views compares the first slot only. This is a
// deliberate policy, not a missing lexicographic fallback: it lets a sort
// reorder the whole container using sequence 0 as the sole key.
//
// The containers are not safe for concurrent use. Views and iterators are
// invalidated by any mutation that the underlying sequence type's own rules
// would treat as invalidating (for example a Slice reallocation).
package zip
