// Package ktuple finds prime k-tuples and the named cousin / sexy pairs in
// an ascending Prime List.
//
// 🚀 What is a pattern?
//
//	A Pattern fixes the numeric distance between a tuple's first and last
//	prime and, for k-tuples, the distance between their list positions.
//	The index constraint rejects spans that have the right width but skip
//	a prime in between. Cousin and sexy pairs only constrain the width.
//
//	  key     distance  index distance
//	  cousin      4          —
//	  sexy        6          —
//	  3           6          2
//	  4           8          3
//	  …
//	  13         48         12
//
// ✨ Scanning:
//
//	Two pointers walk the list: i marks the last prime of a candidate,
//	prev the first. A match is emitted and prev advances by one. When the
//	gap overshoots the distance, prev is advanced and the match re-tested
//	until the gap closes or a match is found. At most one tuple is anchored
//	at any prev.
//
// ⚙️ Usage:
//
//	p, err := ktuple.Lookup("cousin")     // or ktuple.ForSize(4)
//	tuples, err := ktuple.Find(100, p)    // [[3 7] [7 11] …]
//
// Complexity: O(π(n)) for Scan; Find is dominated by the sieve.
package ktuple
