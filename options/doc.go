// Package options holds generator configuration: the default string length and collection count
// ranges, an optional seed, and per-type field settings loaded from YAML.
//
// A configuration file looks like:
//
//	version: "1"
//	seed: 42
//	string_length: {min: 5, max: 11}
//	collection_count: {min: 3, max: 6}
//	types:
//	  - name: store.Customer
//	    fields:
//	      Country: "NL"
//	    generators:
//	      Email: email
//	      Phone: phone
//	    skip: [Notes]
package options
