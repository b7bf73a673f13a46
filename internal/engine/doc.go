// Package engine runs the translation pipeline: detect the source language,
// split long documents into chunks, translate each chunk through the model,
// merge the translated chunks back together and optionally summarize the
// result. A single chunk failure fails the whole document; partial
// translations are never returned.
package engine
