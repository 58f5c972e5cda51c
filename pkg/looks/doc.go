// Package looks checks that a value has the shape a test expects.
//
// A Spec maps runtime type tags ("function", "string", "number", "boolean",
// "object", ...) to the names of the properties that must carry that tag.
// Like walks the spec in insertion order and reports the first property that
// is either missing or of the wrong type:
//
//	spec := looks.NewSpec().
//	    Expect(looks.Function, "One").
//	    Expect(looks.String, "Two").
//	    Expect(looks.Object, "Something SomethingElse")
//
//	if err := looks.Like(controller, spec); err != nil {
//	    t.Fatal(err) // Expected object to have the property 'SomethingElse'.
//	}
//
// Property lists can be given as one space-delimited string or as a sequence
// of names; both forms normalise to the same ordered list:
//
//	spec.Expect(looks.Number, "count total")
//	spec.ExpectNames(looks.Number, "count", "total")
//
// Specs can also be parsed from YAML or JSON documents. The document's key
// order is kept, so the reported violation is the same one a reader of the
// file would expect:
//
//	spec, err := looks.ParseSpec([]byte(`{"function": "one", "object": ["a", "b"]}`))
//
// Properties are found the way a membership test would find them: map keys,
// exported struct fields (including promoted ones), `json` tag names, methods
// of the value or of its pointer, and anything a Lookuper resolves (scopes
// answer through their parent chain).
//
// Violations are returned, never panicked, so the result can be handed
// straight to require.NoError or t.Fatal.
package looks
