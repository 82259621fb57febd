// Package geoindex provides an R-tree over geometry envelopes with exact
// refinement through the geos package.
//
// The filter-refine split is the standard spatial-query shape: bounding
// boxes prune cheaply in the tree, then the engine's exact predicates run
// only against the survivors. For a query touching k of n entries the
// engine cost drops from n predicate calls to roughly k.
//
//	ix := geoindex.New()
//	for _, parcel := range parcels {
//	    if _, err := ix.Insert(parcel.Shape, parcel.ID); err != nil {
//	        return err
//	    }
//	}
//	hits, err := ix.Intersecting(query)
//
// The index requires the native engine; without it every operation fails
// with geos.ErrNotBuilt.
package geoindex
