// Package feed is a small HTTP client for a brokerage listings API.
//
// The API exposes a single endpoint:
//
//	GET /api/listings?community=<name>&featured=1&limit=<n>
//
// returning
//
//	{"items": [{"id": "...", "title": "...", "price_aed": 3150000, ...}]}
//
// All query parameters are optional. Responses are decoded into
// listing.Listing values and passed through listing.Normalize, so a feed
// with blank titles or duplicate IDs behaves exactly like a catalog file.
//
// Requests carry a 5 second timeout, Accept: application/json and a
// showcase user agent. Any non-2xx status is returned as an error; the
// caller (the app poller) records it in the state store and backs off.
package feed
