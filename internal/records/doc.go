// Package records defines the user record shape and the client that loads the
// record collection.
//
// # Source
//
// The collection is a JSON array of objects:
//
//	[{"id": "U1", "name": "Alice", "address": "1 Main St", "pincode": "10001", "items": ["pen", "book"]}]
//
// The client performs one GET per FetchRecords call with an Accept header of
// application/json. Sources without a scheme, or with the file scheme, are
// read from disk instead, which is handy for demos and tests.
//
// No schema validation happens beyond JSON decoding: missing fields decode to
// zero values and unknown fields are ignored.
//
// # Errors
//
// FetchRecords wraps failures with the step that failed:
//
//   - "execute request": transport error, timeout, context cancellation
//   - "source ... returned status N": HTTP status >= 400
//   - "decode response": body is not a JSON array of records
//   - "open source": local file missing or unreadable
//
// Callers decide what to do with the error; the application logs it and
// carries on with an empty collection.
package records
