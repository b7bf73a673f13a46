// Package detect identifies the language of a document by showing the model
// a short sample and normalizing its answer onto a closed set of canonical
// language names. Results are cached by content hash so repeated requests
// for the same document cost no model call.
package detect
