package ctm

// UnknownMarker is the explicit filler for canonical fields that the source
// feed never provided. Downstream predicates check for it rather than for an
// empty string so that "absent from the feed" is distinguishable from "present
// but empty".
const UnknownMarker = "UNKNOWN"
