// Package view implements derived, continuously-resynchronized projections
// of a source container.
//
// A View subscribes to a source's change channel and maintains a
// materialized copy equal to sort(filter(snapshot).map(project)). Any
// source mutation triggers a synchronous full rebuild before the mutating
// call returns; the view then emits one Reset to its own observers. Filter
// and sort criteria persist across rebuilds until explicitly reset.
//
// Rebuilds are always full recomputations. Filter and sort are arbitrary
// user-supplied functions with no monotonicity or stability guarantees, so
// incremental patching cannot be done soundly.
//
// Views are scoped resources: call Dispose when done with a view, on every
// exit path, so its subscription into the source is released. A disposed
// view stops reacting and keeps its last materialized contents.
//
//	source := collections.NewListOf([]string{"Banana", "Apple", "Cherry"})
//	v, err := view.New[string](source)
//	if err != nil {
//		return err
//	}
//	defer v.Dispose()
//	v.AttachFilter(func(s string) bool { return strings.Contains(s, "a") })
//	v.Items() // ["Banana", "Apple"]
package view
