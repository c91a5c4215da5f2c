package profile

// Patch holds canonical values for the declared fields present in one
// update request. Absent fields stay absent; the merge engine never
// touches stored values for them.
type Patch map[string]any

// Normalize runs every key of a raw client payload through the schema's
// coercion rules and returns the resulting patch plus the keys that were
// dropped (unknown fields and values the field's rule rejected).
//
// A dropped field never fails the request: the service favors accepting
// a partial payload over rejecting the whole write. Normalize has no
// side effects and is idempotent over its own output.
func Normalize(raw map[string]any) (Patch, []string) {
	patch := make(Patch, len(raw))
	var dropped []string
	for name, value := range raw {
		canonical, ok := Coerce(name, value)
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		patch[name] = canonical
	}
	return patch, dropped
}

// canonicalize re-coerces every declared field of a stored document,
// repairing legacy shapes (links persisted as a raw delimited string)
// and filling schema defaults for fields the record predates. Records
// written under older revisions stay readable without a migration step.
// Values a rule rejects fall back to the default.
func canonicalize(doc map[string]any) map[string]any {
	out := make(map[string]any, len(Schema))
	for _, f := range Schema {
		raw, ok := doc[f.Name]
		if !ok {
			out[f.Name] = f.Default
			continue
		}
		canonical, ok := Coerce(f.Name, raw)
		if !ok {
			out[f.Name] = f.Default
			continue
		}
		out[f.Name] = canonical
	}
	return out
}
