/*
Package seqs provides lazy helpers for Go 1.23+ iterators (iter.Seq).

It covers:

  - **Adaptors**: [Zip] pairs two sequences positionally, [Enumerate] attaches a
    zero-based index to every element. Neither copies the underlying data.
  - **Transformations**: [Map], [Filter], [Take].
  - **Reductions**: [Sum], [Prod], [Min], [Max], [Count], [Fold].
  - **Producers**: [Range].
  - **Pull access**: [Cursor] for code that wants an explicit Next/Value loop.

# Termination

[Zip] stops at the first exhausted input, so it yields exactly
min(len(a), len(b)) pairs. A length mismatch is not an error; pass
[WithMismatchLogger] to have it reported.

	for i, p := range seqs.Enumerate(seqs.Zip(slices.Values(a), slices.Values(b))) {
		fmt.Println(i, p.V1, p.V2)
	}

# Ownership

Adaptors borrow their inputs for the duration of one iteration. The caller must
not mutate a backing slice while an adaptor over it is being ranged.
*/
package seqs
