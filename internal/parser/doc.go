// Package parser extracts the translated text and the optional summary from
// raw model output. Models do not always follow the requested output format,
// so extraction runs through an ordered list of named strategies, from the
// explicit marker format down to a last-line heuristic.
package parser
