// Package hashset provides Set, a separately chained hash container.
//
// A Set keeps an array of buckets, each a short list of keys whose hash maps
// to that bucket. Buckets are allocated lazily: the first Insert into a set
// with no buckets creates exactly one. Before every later Insert the load
// factor Len()/BucketCount() is checked and, once it has reached 1, the bucket
// count is doubled. LoadFactor() therefore never exceeds 1 after an Insert
// returns.
//
// Insert does not look for an existing equal key, so a key inserted twice is
// stored twice and Count reports both copies. Erase removes one copy at a
// time. Use InsertUnique for set semantics.
//
// A Set is not safe for concurrent use.
package hashset
