// Package main hosts the larder CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the ingredient pipeline directly
// (parse, normalize, categorize, convert, yield) and drives the recipe box and
// shopping list through the api package. It centralizes configuration
// resolution, logger construction, and store lifetime so subcommands only
// render results.
//
// Keep this package lean: add behavior to the internal packages first, then
// surface it through a command or flag here.
package main
