/*
Package scope provides the property bags controllers and templates work with.

An Object is an insertion-ordered set of named values. A Scope is an Object
that belongs to a tree: lookups fall through to the parent scope when a name
is not set locally, so a child sees everything its ancestors hold.

Scopes also carry watchers. Digest re-evaluates them until no watched value
changes, which is how compiled templates pick up new scope values.
*/
package scope
