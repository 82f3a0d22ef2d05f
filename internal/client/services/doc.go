// Package services contains the application services of the postview client:
// the session state machine, the theme preference and the posts loaders.
//
// Session and theme services own their state, persist it through a
// kv.Repository and notify subscribers after every transition. Storage
// failures are logged and turned into safe states; they never reach callers.
package services
