// Package raw defines the declarative release configuration tree as users
// write it, before conversion into the canonical model. Optional booleans are
// pointers so an omitted flag can be told apart from an explicit false.
package raw
