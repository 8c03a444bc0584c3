// Package plate holds the stage data model: plates stacked in z-order, each
// owning its screws.
//
// Ownership:
//   - A Plate exclusively owns its Screw slice
//   - A Screw keeps its plate id only as a lookup key, never to mutate the plate
//   - A Stage owns its plates; the screw set is fixed once generated
//
// The only mutation after construction is Remove, which flips a screw's
// removed flag one way. Cleared state is derived from the screws, never stored.
package plate
